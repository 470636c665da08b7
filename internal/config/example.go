package config

import (
	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
)

// DefaultOutputDirectory is where rendered files go unless configured otherwise
const DefaultOutputDirectory = "dist"

// CreateExampleConfiguration creates the default configuration: the Hebrew
// page copy, the calculators' starting values and the standard precisions.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Site: domain.SiteSettings{
			Title:       "אחוזים בחיי היום יום | מדריך אינטראקטיבי",
			Description: "למדו כיצד אחוזים משפיעים על הכסף, הבריאות והזמן שלכם בעזרת דוגמאות יומיומיות וכלים אינטראקטיביים לחישוב.",
			Lang:        "he",
			Dir:         "rtl",
		},
		Content: domain.PageContent{
			HeroTag:  "מדריך יומיומי",
			Headline: "אחוזים בחיי היום יום",
			Lead: "אחוזים נמצאים בכל החלטה – מהסופרמרקט ועד לתכנון החיסכון. כאן תמצאו " +
				"דוגמאות פשוטות, נוסחאות קצרות וכלים אינטראקטיביים שיעזרו לכם להבין " +
				"את התמונה המלאה בכמה שניות.",
			HeroStats: []domain.HeroStat{
				{Value: "₪250", Caption: "החיסכון הממוצע למשק בית בשנה מהשוואת אחוזי הנחה"},
				{Value: "18%", Caption: "ירידה בהוצאות כשעוקבים אחרי אחוזי שימוש חודשיים"},
				{Value: "5 דקות", Caption: "מספיקות להבין את העקרונות הבסיסיים"},
			},
			Everyday: domain.Section{
				Title: "איפה פוגשים אחוזים ביומיום?",
				Lead:  "שימוש מודע באחוזים הופך החלטות פיננסיות, תזונתיות והתנהלות עם זמן לשקופות ומבוססות נתונים.",
			},
			Scenarios: []domain.Scenario{
				{
					Title:       "הנחות וקניות חכמות",
					Description: "פירוק אחוזי הנחה על תוויות מחיר הופך קל כשמחשבים כמה באמת נחסוך וכמה נשלם בסוף הקופה.",
					Highlight:   "דוגמה: חולצה במחיר 180 ₪ עם הנחה של 25% תעלה 135 ₪ בלבד.",
				},
				{
					Title:       "טיפים ושירות",
					Description: "טיפ במסעדה, לשליח או למכוניות – אחוז מסכום החשבון עוזר לנו לתת תגמול הוגן ושקוף.",
					Highlight:   "טיפ של 12% על חשבון של 220 ₪ שווה 26.4 ₪.",
				},
				{
					Title:       "בריאות וכושר",
					Description: "אחוזי שומן, התקדמות באימונים או ירידה במשקל – כך ניתן לעקוב אחרי שינוי ולא רק אחרי המספרים הגולמיים.",
					Highlight:   "אם ירדתם מ־72 ק״ג ל־68 ק״ג ירדתם 5.6% מהמשקל.",
				},
				{
					Title:       "חיסכון ויעדים",
					Description: "תכנון תקציב, חיסכון לעצמאות כלכלית או ידיעת האחוז שכבר השגתם מתוך מטרה שנתית.",
					Highlight:   "חיסכון של 12,000 ₪ מתוך יעד של 18,000 ₪ שווה ל־67%.",
				},
			},
			Tools: domain.Section{
				Title: "כלים לחישוב מהיר",
				Lead:  "בחרו את הסיטואציה המתאימה, הזינו מספרים וקבלו תשובה מידית.",
			},
			Method: domain.Section{
				Title: "צעדים לפתרון בעיות באחוזים",
				Lead:  "שיטה קצרה שתעזור לכם להישאר מדויקים בכל חישוב.",
			},
			Steps: []string{
				"זהו את הערך המלא (לדוגמה מחיר, כמות קלוריות או שעות עבודה).",
				"המירו את האחוז לשבר עשרוני על ידי חלוקה ב-100.",
				"חשבו את החלק הרצוי באמצעות כפל הערך המלא בשבר העשרוני.",
				"החליטו אם יש צורך להוסיף או להפחית את החלק שקיבלתם.",
				"סמנו לעצמכם את התוצאה והקשר – האם מדובר ברווח, חיסכון או שינוי.",
			},
			QuickWins: []string{
				"זכרו ש-10% הם עשירית: הזיזו את הנקודה העשרונית צעד שמאלה.",
				"כפולה של 5% היא פשוט חצי מהתוצאה של 10%.",
				"כאשר מנכים אחוז ואז מוסיפים אותו מחדש – לא חוזרים לאותו סכום (בגלל בסיס שונה).",
				"אחוז שינוי מחושב יחסית לערך המקורי בלבד.",
			},
		},
		Calculators: domain.CalculatorInputs{
			Discount: domain.DiscountInput{OriginalPrice: "220", DiscountPercent: "15"},
			Tip:      domain.TipInput{BillAmount: "185", TipPercent: "12", DinerCount: "2"},
			Progress: domain.ProgressInput{TargetValue: "10000", CurrentValue: "6300"},
		},
		Display: domain.DisplaySettings{
			DiscountCurrencyDigits: 1,
			TipCurrencyDigits:      2,
			ProgressCurrencyDigits: 2,
			PercentDigits:          1,
		},
		Output: domain.OutputSettings{
			Directory: DefaultOutputDirectory,
			Formats:   []string{"html"},
		},
	}
}
