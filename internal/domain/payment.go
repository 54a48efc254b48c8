package domain

// PaymentInfo is the customer billing detail submitted with every payment
// form. It is request-scoped and never persisted.
type PaymentInfo struct {
	FirstName          string
	LastName           string
	Email              string
	Address            string
	Address2           string
	City               string
	State              string
	PaymentMethodNonce string
	CompanyName        string
}

// PaymentKind identifies which of the three payment flows an order belongs to.
type PaymentKind string

const (
	KindCourseSignup PaymentKind = "course_signup"
	KindDonation     PaymentKind = "donation"
	KindInvoice      PaymentKind = "invoice"
)

// DisplayName is the human-readable name used on result pages and in
// gateway metadata.
func (k PaymentKind) DisplayName() string {
	switch k {
	case KindCourseSignup:
		return "Course Signup"
	case KindDonation:
		return "Donation"
	case KindInvoice:
		return "Invoice"
	}
	return string(k)
}

// ReturnURL is where the result page sends the customer back to.
func (k PaymentKind) ReturnURL() string {
	switch k {
	case KindCourseSignup:
		return "https://store.sbhackerspace.com"
	case KindDonation:
		return "https://donate.sbhackerspace.com"
	case KindInvoice:
		return "https://invoice.sbhackerspace.com"
	}
	return "https://store.sbhackerspace.com"
}
