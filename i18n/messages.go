package i18n

var messages = map[Locale]map[string]string{
	English: {
		"allCategories":  "All Categories",
		"food":           "Food",
		"cloth":          "Clothing",
		"electronic":     "Electronics",
		"emptyCart":      "Your cart is empty",
		"selectLocation": "Select Delivery Location",
		"paymentMethod":  "Payment Method",
		"cashOnDelivery": "Cash on Delivery",
		"syriatelCash":   "Syriatel Cash",
		"pending":        "Pending",
		"processing":     "Processing",
		"shipped":        "Shipped",
		"delivered":      "Delivered",
		"cancelled":      "Cancelled",
		"phoneNumber":    "Phone Number",
		"enterCode":      "Enter the verification code sent to your phone",
		"error":          "Error",
		"success":        "Success",
		"specialOffer":   "Special Offer",
		"limitedTime":    "Limited Time Offer!",
		"placeOrder":     "Place Order",
		"address":        "Address",
		"color":          "Color",
		"size":           "Size",
		"quantity":       "Quantity",
		"notFound":       "Not found",
		"unauthorized":   "Please sign in again",
	},
	Arabic: {
		"allCategories":  "جميع الفئات",
		"food":           "طعام",
		"cloth":          "ملابس",
		"electronic":     "إلكترونيات",
		"emptyCart":      "سلتك فارغة",
		"selectLocation": "اختر موقع التوصيل",
		"paymentMethod":  "طريقة الدفع",
		"cashOnDelivery": "الدفع عند الاستلام",
		"syriatelCash":   "سيرياتيل كاش",
		"pending":        "قيد الانتظار",
		"processing":     "قيد المعالجة",
		"shipped":        "تم الشحن",
		"delivered":      "تم التسليم",
		"cancelled":      "ملغي",
		"phoneNumber":    "رقم الهاتف",
		"enterCode":      "أدخل رمز التحقق المرسل إلى هاتفك",
		"error":          "خطأ",
		"success":        "نجح",
		"specialOffer":   "عرض خاص",
		"limitedTime":    "عرض لفترة محدودة!",
		"placeOrder":     "تأكيد الطلب",
		"address":        "العنوان",
		"color":          "اللون",
		"size":           "المقاس",
		"quantity":       "الكمية",
		"notFound":       "غير موجود",
		"unauthorized":   "يرجى تسجيل الدخول مرة أخرى",
	},
}

// T returns the message for key in locale l, falling back to English and
// finally to the key itself.
func T(l Locale, key string) string {
	if msg, ok := messages[l][key]; ok {
		return msg
	}
	if msg, ok := messages[English][key]; ok {
		return msg
	}
	return key
}
