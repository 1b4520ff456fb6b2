package models

type BusinessType string

const (
	BusinessTypeManufacturer   BusinessType = "Manufacturer"
	BusinessTypeTradingCompany BusinessType = "Trading Company"
	BusinessTypeDistributor    BusinessType = "Distributor"
	BusinessTypeOther          BusinessType = "Other"
)

type SupplierContact struct {
	Name     string `json:"name"     validate:"required"`
	Position string `json:"position"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Website  string `json:"website,omitempty" validate:"omitempty,url"`
}

type SocialMedia struct {
	Website  string `json:"website,omitempty"  validate:"omitempty,url"`
	Facebook string `json:"facebook,omitempty" validate:"omitempty,url"`
	LinkedIn string `json:"linkedin,omitempty" validate:"omitempty,url"`
	Twitter  string `json:"twitter,omitempty"  validate:"omitempty,url"`
}

type Supplier struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Logo               string          `json:"logo"`
	Description        string          `json:"description"`
	Location           string          `json:"location"`
	MainProducts       []string        `json:"mainProducts"`
	Certifications     []string        `json:"certifications"`
	ResponseTime       string          `json:"responseTime"`
	Verified           bool            `json:"verified"`
	Rating             float64         `json:"rating"`
	TotalReviews       int             `json:"totalReviews"`
	ProductionCapacity string          `json:"productionCapacity"`
	YearEstablished    int             `json:"yearEstablished"`
	BusinessType       BusinessType    `json:"businessType"`
	Employees          string          `json:"employees"`
	AnnualRevenue      string          `json:"annualRevenue"`
	Contact            SupplierContact `json:"contact"`
	SocialMedia        *SocialMedia    `json:"socialMedia,omitempty"`
}

// CreateSupplierRequest is a Supplier without its id.
type CreateSupplierRequest struct {
	Name               string          `json:"name"            validate:"required,min=2,max=200"`
	Logo               string          `json:"logo"            validate:"omitempty,url"`
	Description        string          `json:"description"`
	Location           string          `json:"location"`
	MainProducts       []string        `json:"mainProducts"`
	Certifications     []string        `json:"certifications"`
	ResponseTime       string          `json:"responseTime"`
	Verified           bool            `json:"verified"`
	Rating             float64         `json:"rating"          validate:"gte=0,lte=5"`
	TotalReviews       int             `json:"totalReviews"    validate:"gte=0"`
	ProductionCapacity string          `json:"productionCapacity"`
	YearEstablished    int             `json:"yearEstablished" validate:"omitempty,gte=1800"`
	BusinessType       BusinessType    `json:"businessType"    validate:"required,oneof=Manufacturer 'Trading Company' Distributor Other"`
	Employees          string          `json:"employees"`
	AnnualRevenue      string          `json:"annualRevenue"`
	Contact            SupplierContact `json:"contact"`
	SocialMedia        *SocialMedia    `json:"socialMedia,omitempty"`
}

// UpdateSupplierRequest carries a partial update; nil fields are left alone.
type UpdateSupplierRequest struct {
	Name               *string          `json:"name,omitempty"            validate:"omitempty,min=2,max=200"`
	Logo               *string          `json:"logo,omitempty"            validate:"omitempty,url"`
	Description        *string          `json:"description,omitempty"`
	Location           *string          `json:"location,omitempty"`
	MainProducts       []string         `json:"mainProducts,omitempty"`
	Certifications     []string         `json:"certifications,omitempty"`
	ResponseTime       *string          `json:"responseTime,omitempty"`
	Verified           *bool            `json:"verified,omitempty"`
	Rating             *float64         `json:"rating,omitempty"          validate:"omitempty,gte=0,lte=5"`
	TotalReviews       *int             `json:"totalReviews,omitempty"    validate:"omitempty,gte=0"`
	ProductionCapacity *string          `json:"productionCapacity,omitempty"`
	YearEstablished    *int             `json:"yearEstablished,omitempty" validate:"omitempty,gte=1800"`
	BusinessType       *BusinessType    `json:"businessType,omitempty"    validate:"omitempty,oneof=Manufacturer 'Trading Company' Distributor Other"`
	Employees          *string          `json:"employees,omitempty"`
	AnnualRevenue      *string          `json:"annualRevenue,omitempty"`
	Contact            *SupplierContact `json:"contact,omitempty"`
	SocialMedia        *SocialMedia     `json:"socialMedia,omitempty"`
}
