package app

// salesTaxRate is the California rate applied to invoices unless disabled.
const salesTaxRate = 0.0875

// InvoiceTotal computes the tax-and-fees line and the charge total for an
// invoice. Pure display/charge-input computation; nothing is persisted.
func InvoiceTotal(price float64, disableSalesTax bool, fees float64) (tax, total float64) {
	rate := salesTaxRate
	if disableSalesTax {
		rate = 0
	}
	tax = price*rate + fees
	return tax, price + tax
}
