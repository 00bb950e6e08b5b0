package models

// SeniorityLevel is the seniority classification attached to a role
type SeniorityLevel string

const (
	SeniorityIntern         SeniorityLevel = "INTERN"
	SeniorityEntryLevel     SeniorityLevel = "ENTRY_LEVEL"
	SeniorityAssociate      SeniorityLevel = "ASSOCIATE"
	SeniorityMidSeniorLevel SeniorityLevel = "MID_SENIOR_LEVEL"
	SeniorityDirector       SeniorityLevel = "DIRECTOR"
	SeniorityExecutive      SeniorityLevel = "EXECUTIVE"
	SeniorityCLevel         SeniorityLevel = "C_LEVEL"
)

// SeniorityLevels lists every known seniority level in ascending order
var SeniorityLevels = []SeniorityLevel{
	SeniorityIntern,
	SeniorityEntryLevel,
	SeniorityAssociate,
	SeniorityMidSeniorLevel,
	SeniorityDirector,
	SeniorityExecutive,
	SeniorityCLevel,
}

// CompanySize is the headcount bracket of a company
type CompanySize string

const (
	CompanySizeUnspecified CompanySize = "A"
	CompanySize1To10       CompanySize = "B"
	CompanySize11To50      CompanySize = "C"
	CompanySize51To200     CompanySize = "D"
	CompanySize201To500    CompanySize = "E"
	CompanySize501To1000   CompanySize = "F"
	CompanySize1001To5000  CompanySize = "G"
	CompanySize5001To10000 CompanySize = "H"
	CompanySize10001Plus   CompanySize = "I"
)

// CompanyType is the legal/organisational form of a company
type CompanyType string

const (
	CompanyTypeEducational      CompanyType = "EDUCATIONAL"
	CompanyTypeGovernmentAgency CompanyType = "GOVERNMENT_AGENCY"
	CompanyTypeNonProfit        CompanyType = "NON_PROFIT"
	CompanyTypePartnership      CompanyType = "PARTNERSHIP"
	CompanyTypePrivatelyHeld    CompanyType = "PRIVATELY_HELD"
	CompanyTypePublicCompany    CompanyType = "PUBLIC_COMPANY"
	CompanyTypeSelfEmployed     CompanyType = "SELF_EMPLOYED"
	CompanyTypeSelfOwned        CompanyType = "SELF_OWNED"
)
