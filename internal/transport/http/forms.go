package http

import "github.com/dloman/sbhx-store/internal/domain"

// paymentForm is the billing detail block shared by every payment form.
type paymentForm struct {
	FirstName          string `form:"first_name" binding:"required"`
	LastName           string `form:"last_name" binding:"required"`
	Email              string `form:"email" binding:"required,email"`
	Address            string `form:"address"`
	Address2           string `form:"address2"`
	City               string `form:"city"`
	State              string `form:"state"`
	PaymentMethodNonce string `form:"payment_method_nonce" binding:"required"`
	CompanyName        string `form:"company_name"`
}

func (f paymentForm) toDomain() domain.PaymentInfo {
	return domain.PaymentInfo{
		FirstName:          f.FirstName,
		LastName:           f.LastName,
		Email:              f.Email,
		Address:            f.Address,
		Address2:           f.Address2,
		City:               f.City,
		State:              f.State,
		PaymentMethodNonce: f.PaymentMethodNonce,
		CompanyName:        f.CompanyName,
	}
}

type signupForm struct {
	CourseType string `form:"course_type" binding:"required"`
	paymentForm
}

type donationForm struct {
	Amount         float64 `form:"amount" binding:"required,gt=0"`
	FundraiserName string  `form:"fundraiser_name" binding:"required"`
	paymentForm
}

type invoiceForm struct {
	Price           float64 `form:"price" binding:"required,gt=0"`
	InvoiceID       string  `form:"invoice_id" binding:"required"`
	DueDate         string  `form:"due_date"`
	DisableSalesTax bool    `form:"disable_sales_tax"`
	Fees            float64 `form:"fees"`
	paymentForm
}

// invoiceQuery drives the invoice form page; the customer arrives with the
// invoice parameters in the link.
type invoiceQuery struct {
	Price           float64 `form:"price" binding:"required,gt=0"`
	InvoiceID       string  `form:"invoice_id" binding:"required"`
	DueDate         string  `form:"due_date"`
	DisableSalesTax bool    `form:"disable_sales_tax"`
	Fees            float64 `form:"fees"`
}
