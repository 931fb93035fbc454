package fixtures

// Reference data consumed by the validators: closed category, payment
// method, document type and employment status sets. These live outside
// the engines so the sets can be extended without touching engine logic.

// Catalog is the injected reference-data collaborator.
type Catalog struct {
	incomeCategories  []string
	expenseCategories []string
	paymentMethods    []string
	documentTypes     []string
	activeStatuses    []string
	separatedStatuses []string
	employmentStatus  []string
}

// DefaultCatalog returns the built-in reference data set.
func DefaultCatalog() *Catalog {
	return &Catalog{
		incomeCategories: []string{
			"service_revenue",
			"project_payment",
			"product_sales",
			"interest",
			"other_income",
		},
		expenseCategories: []string{
			"salary",
			"office_supplies",
			"rent",
			"utilities",
			"travel",
			"marketing",
			"equipment",
			"other_expense",
		},
		paymentMethods: []string{
			"cash",
			"bank_transfer",
			"credit_card",
			"e_wallet",
			"cheque",
		},
		documentTypes: []string{
			"contract",
			"invoice",
			"report",
			"certificate",
			"identity",
			"other",
		},
		employmentStatus: []string{
			"active",
			"probation",
			"on_leave",
			"resigned",
			"terminated",
		},
		activeStatuses: []string{
			"active",
			"probation",
		},
		separatedStatuses: []string{
			"resigned",
			"terminated",
		},
	}
}

// CategoriesFor returns the allowed category set for a transaction
// type ("income" or "expense"). Unknown types get an empty set.
func (c *Catalog) CategoriesFor(txType string) []string {
	switch txType {
	case "income":
		return c.incomeCategories
	case "expense":
		return c.expenseCategories
	default:
		return nil
	}
}

// IsValidCategory is type-scoped: a category valid for income is not
// automatically valid for expense.
func (c *Catalog) IsValidCategory(txType, category string) bool {
	for _, allowed := range c.CategoriesFor(txType) {
		if allowed == category {
			return true
		}
	}
	return false
}

func (c *Catalog) IsValidPaymentMethod(method string) bool {
	return contains(c.paymentMethods, method)
}

func (c *Catalog) PaymentMethods() []string {
	return c.paymentMethods
}

func (c *Catalog) IsValidDocumentType(docType string) bool {
	return contains(c.documentTypes, docType)
}

func (c *Catalog) DocumentTypes() []string {
	return c.documentTypes
}

func (c *Catalog) IsValidEmploymentStatus(status string) bool {
	return contains(c.employmentStatus, status)
}

func (c *Catalog) EmploymentStatuses() []string {
	return c.employmentStatus
}

// IsActiveEmployment reports whether an employee in this status may
// check in and be referenced by new records.
func (c *Catalog) IsActiveEmployment(status string) bool {
	return contains(c.activeStatuses, status)
}

// IsSeparatedEmployment reports whether this status counts toward
// turnover. Statuses such as on_leave are neither active nor separated.
func (c *Catalog) IsSeparatedEmployment(status string) bool {
	return contains(c.separatedStatuses, status)
}

func contains(set []string, value string) bool {
	for _, item := range set {
		if item == value {
			return true
		}
	}
	return false
}
