package apperrors

import (
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var defaultLanguage = language.English

var supportedLanguages = []language.Tag{
	language.English,
	language.Arabic,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

var messages = map[language.Tag]map[string]string{
	language.English: {
		CodeValidationFailed:         "validation failed: %s",
		CodeInvoiceItemsEmpty:        "invoice must contain at least one item",
		CodePaidNegative:             "paid cannot be negative",
		CodePaidExceedsTotal:         "paid cannot exceed total",
		CodeProductDescriptionNeeded: "description is required for a new product",
		CodeInsufficientStock:        "insufficient stock for product %s (barcode %s)",
		CodeAmountNotPositive:        "amount must be greater than zero",
		CodeInvalidSlug:              "slug %s must contain only lowercase letters, digits and single hyphens",
		CodeOrganizationNotFound:     "organization %s not found",
		CodeUserNotFound:             "user %s not found",
		CodeCustomerNotFound:         "customer %s not found",
		CodeProductNotFound:          "product %s not found",
		CodeInvoiceNotFound:          "invoice %s not found",
		CodeOrganizationSlugTaken:    "organization slug is already taken",
		CodeCustomerNameTaken:        "a customer with this name already exists",
		CodeProductBarcodeTaken:      "a product with this barcode already exists",
		CodeProductDescriptionUsed:   "a product with this description already exists",
		CodeUsernameTaken:            "username is already taken",
		CodeDuplicate:                "resource already exists",
		CodeLastAdmin:                "cannot delete the last admin of the organization",
		CodeSelfDelete:               "you cannot delete your own account",
		CodeAdminRequired:            "only admins can perform this action",
		CodeNotMember:                "you are not a member of organization %s",
	},
	language.Arabic: {
		CodeValidationFailed:         "فشل التحقق: %s",
		CodeInvoiceItemsEmpty:        "يجب أن تحتوي الفاتورة على صنف واحد على الأقل",
		CodePaidNegative:             "لا يمكن أن يكون المبلغ المدفوع سالبًا",
		CodePaidExceedsTotal:         "لا يمكن أن يتجاوز المبلغ المدفوع الإجمالي",
		CodeProductDescriptionNeeded: "الوصف مطلوب للمنتج الجديد",
		CodeInsufficientStock:        "المخزون غير كافٍ للمنتج %s (الباركود %s)",
		CodeAmountNotPositive:        "يجب أن يكون المبلغ أكبر من صفر",
		CodeInvalidSlug:              "المعرّف %s يجب أن يحتوي على حروف صغيرة وأرقام وشرطات مفردة فقط",
		CodeOrganizationNotFound:     "المؤسسة %s غير موجودة",
		CodeUserNotFound:             "المستخدم %s غير موجود",
		CodeCustomerNotFound:         "العميل %s غير موجود",
		CodeProductNotFound:          "المنتج %s غير موجود",
		CodeInvoiceNotFound:          "الفاتورة %s غير موجودة",
		CodeOrganizationSlugTaken:    "معرّف المؤسسة مستخدم بالفعل",
		CodeCustomerNameTaken:        "يوجد عميل بهذا الاسم بالفعل",
		CodeProductBarcodeTaken:      "يوجد منتج بهذا الباركود بالفعل",
		CodeProductDescriptionUsed:   "يوجد منتج بهذا الوصف بالفعل",
		CodeUsernameTaken:            "اسم المستخدم مستخدم بالفعل",
		CodeDuplicate:                "المورد موجود بالفعل",
		CodeLastAdmin:                "لا يمكن حذف آخر مسؤول في المؤسسة",
		CodeSelfDelete:               "لا يمكنك حذف حسابك",
		CodeAdminRequired:            "هذا الإجراء متاح للمسؤولين فقط",
		CodeNotMember:                "لست عضوًا في المؤسسة %s",
	},
}

var messageCatalog = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(defaultLanguage))
	for tag, entries := range messages {
		for code, msg := range entries {
			if err := b.SetString(tag, code, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

func render(tag language.Tag, code string, args ...any) string {
	p := message.NewPrinter(tag, message.Catalog(messageCatalog))
	return p.Sprintf(code, args...)
}

// MatchLanguage picks the best supported language for an Accept-Language header value.
func MatchLanguage(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return defaultLanguage
	}
	_, idx, _ := languageMatcher.Match(tags...)
	return supportedLanguages[idx]
}

// Localize renders err for the given Accept-Language header value. Errors
// without a code fall back to err.Error().
func Localize(err error, acceptLanguage string) string {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return err.Error()
	}
	return render(MatchLanguage(acceptLanguage), appErr.Code, appErr.Args...)
}
