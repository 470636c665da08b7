package domain

// Field and result keys shared by every output format
const (
	KeyOriginalPrice   = "original_price"
	KeyDiscountPercent = "discount_percent"
	KeyFinalPrice      = "final_price"
	KeySavedAmount     = "saved_amount"

	KeyBillAmount      = "bill_amount"
	KeyTipPercent      = "tip_percent"
	KeyDinerCount      = "diner_count"
	KeyTipAmount       = "tip_amount"
	KeyTotalAmount     = "total_amount"
	KeyPerPersonAmount = "per_person_amount"

	KeyTargetValue       = "target_value"
	KeyCurrentValue      = "current_value"
	KeyCompletionPercent = "completion_percent"
	KeyRemainingAmount   = "remaining_amount"
	KeyDifferencePercent = "difference_percent"
)

// CalculatorCopy is the fixed Hebrew text of one calculator card
type CalculatorCopy struct {
	Title        string
	Description  string
	Labels       map[string]string
	Placeholders map[string]string
}

// Copy holds the card text of every calculator
var Copy = map[CalculatorKind]CalculatorCopy{
	CalculatorDiscount: {
		Title:       "מחשבון הנחה",
		Description: "הזינו מחיר לפני הנחה ואחוז הנחה כדי להבין כמה תשלמו וכמה חסכתם.",
		Labels: map[string]string{
			KeyOriginalPrice:   "מחיר מקורי (₪)",
			KeyDiscountPercent: "אחוז הנחה (%)",
			KeyFinalPrice:      "מחיר לאחר הנחה",
			KeySavedAmount:     "חיסכון כולל",
		},
		Placeholders: map[string]string{
			KeyOriginalPrice:   "לדוגמה 180",
			KeyDiscountPercent: "לדוגמה 25",
		},
	},
	CalculatorTip: {
		Title:       "חלוקת טיפ והחשבון",
		Description: "חשבו טיפ בעבור שירות וחלקו את הסכום בין יושבי השולחן בצורה הוגנת.",
		Labels: map[string]string{
			KeyBillAmount:      "סה״כ חשבון (₪)",
			KeyTipPercent:      "אחוז טיפ (%)",
			KeyDinerCount:      "מספר סועדים",
			KeyTipAmount:       "סכום טיפ",
			KeyTotalAmount:     "סה״כ לתשלום",
			KeyPerPersonAmount: "עלות לכל סועד",
		},
		Placeholders: map[string]string{
			KeyBillAmount: "לדוגמה 220",
			KeyTipPercent: "לדוגמה 12",
			KeyDinerCount: "לדוגמה 3",
		},
	},
	CalculatorProgress: {
		Title:       "מעקב אחר יעד",
		Description: "בדקו כמה התקדמתם לעבר מטרה כספית או כמותית וכמה אחוז עוד נשאר.",
		Labels: map[string]string{
			KeyTargetValue:       "יעד כולל (₪)",
			KeyCurrentValue:      "התקדמות נוכחית",
			KeyCompletionPercent: "השלמה עד כה",
			KeyRemainingAmount:   "סכום שנותר",
			KeyDifferencePercent: "פער מול היעד",
		},
		Placeholders: map[string]string{
			KeyTargetValue:  "לדוגמה 15000",
			KeyCurrentValue: "לדוגמה 8200",
		},
	},
}
