// internal/models/snapshot.go
package models

// ApplicationSnapshot is the immutable view of one loan application as
// supplied by the loan-origination system. The checklist engine never
// mutates it and never fetches data itself.
type ApplicationSnapshot struct {
	Application Application `json:"application"`
	Borrowers   []Borrower  `json:"borrowers"`
	Incomes     []Income    `json:"incomes"`
	Assets      []Asset     `json:"assets"`
	Liabilities []Liability `json:"liabilities"`
	Properties  []Property  `json:"properties"`
}

// Application goals.
const (
	GoalPurchase  = "purchase"
	GoalRefinance = "refinance"
	GoalRenewal   = "renewal"
)

// Process stages within a purchase.
const (
	ProcessSearching     = "searching"
	ProcessFoundProperty = "found_property"
)

type Application struct {
	ID          string `json:"id"`
	Goal        string `json:"goal"`
	PropertyUse string `json:"propertyUse"` // owner_occupied | rental | owner_occupied_rental
	Process     string `json:"process"`
	PropertyID  string `json:"propertyId,omitempty"` // subject property reference
}

type Borrower struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email,omitempty"`
	MaritalStatus  string `json:"maritalStatus,omitempty"`
	IsMainBorrower bool   `json:"isMainBorrower"`
}

// Income sources.
const (
	IncomeSourceEmployed     = "employed"
	IncomeSourceSelfEmployed = "self_employed"
	IncomeSourcePension      = "pension"
	IncomeSourceRental       = "rental"
	IncomeSourceChildSupport = "child_support"
	IncomeSourceDisability   = "disability"
	IncomeSourceOther        = "other"
)

// Pay types for employment income.
const (
	PayTypeSalary     = "salary"
	PayTypeHourly     = "hourly"
	PayTypeCommission = "commission"
	PayTypeContract   = "contract"
)

type Income struct {
	ID          string `json:"id"`
	BorrowerID  string `json:"borrowerId"`
	Source      string `json:"source"`
	PayType     string `json:"payType,omitempty"`
	Employer    string `json:"employer,omitempty"`
	HasBonus    bool   `json:"hasBonus,omitempty"`
	HasOvertime bool   `json:"hasOvertime,omitempty"`
	Annual      float64 `json:"annual,omitempty"`
}

// Asset types.
const (
	AssetTypeSavings      = "savings"
	AssetTypeChequing     = "chequing"
	AssetTypeRRSP         = "rrsp"
	AssetTypeTFSA         = "tfsa"
	AssetTypeFHSA         = "fhsa"
	AssetTypeGift         = "gift"
	AssetTypeNonRegistered = "non_registered"
	AssetTypePropertySale = "property_sale"
	AssetTypeVehicle      = "vehicle"
	AssetTypeOther        = "other"
)

type Asset struct {
	ID                 string   `json:"id"`
	Type               string   `json:"type"`
	Value              float64  `json:"value"`
	UsedForDownPayment bool     `json:"usedForDownPayment"`
	Description        string   `json:"description,omitempty"`
	OwnerIDs           []string `json:"ownerIds"`
	Hidden             bool     `json:"hidden,omitempty"`
}

// Liability types.
const (
	LiabilityTypeCreditCard     = "credit_card"
	LiabilityTypeLineOfCredit   = "line_of_credit"
	LiabilityTypeSecuredLOC     = "secured_line_of_credit"
	LiabilityTypeStudentLoan    = "student_loan"
	LiabilityTypeCarLoan        = "car_loan"
	LiabilityTypeSupportPayment = "support_payment"
	LiabilityTypeOtherLoan      = "other_loan"
)

type Liability struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Monthly  float64  `json:"monthly,omitempty"`
	OwnerIDs []string `json:"ownerIds"`
}

// Property types.
const (
	PropertyTypeDetached    = "detached"
	PropertyTypeSemi        = "semi_detached"
	PropertyTypeCondo       = "condo"
	PropertyTypeTownhouse   = "townhouse"
	PropertyTypeMultiUnit   = "multi_unit"
	PropertyTypeRural       = "rural"
)

type Property struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Units         int     `json:"units,omitempty"`
	MonthlyFees   float64 `json:"monthlyFees,omitempty"`
	RentalIncome  float64 `json:"rentalIncome,omitempty"`
	HasMortgage   bool    `json:"hasMortgage,omitempty"`
	IsSelling     bool    `json:"isSelling,omitempty"`
	Address       string  `json:"address,omitempty"`
}
