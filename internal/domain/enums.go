package domain

type AccountKind string

const (
	AccountSavings    AccountKind = "savings"
	AccountInvestment AccountKind = "investment"
)

// AccountKinds lists account variants in lookup order.
var AccountKinds = []AccountKind{AccountSavings, AccountInvestment}

type EventKind string

const (
	EventIncome   EventKind = "income"
	EventExpense  EventKind = "expense"
	EventPriority EventKind = "priority"
)

var EventKinds = []EventKind{EventIncome, EventExpense, EventPriority}

// ReferenceType is the tag of a DateReference.
type ReferenceType string

const (
	RefKeyword   ReferenceType = "keyword"
	RefYear      ReferenceType = "year"
	RefDate      ReferenceType = "date"
	RefMilestone ReferenceType = "milestone"
)

// ReferenceTypes is the closed set of DateReference tags.
var ReferenceTypes = []ReferenceType{RefKeyword, RefYear, RefDate, RefMilestone}

// Keywords is the closed set of values for a keyword DateReference.
var Keywords = []string{"now", "endOfPlan", "beforeCurrentYear", "never"}

const (
	KeywordNow       = "now"
	KeywordEndOfPlan = "endOfPlan"
)

const (
	ModifierInclude = "include"
	ModifierExclude = "exclude"
)

// CriterionType is the tag of a milestone Criterion.
type CriterionType string

const (
	CriterionYear      CriterionType = "year"
	CriterionDate      CriterionType = "date"
	CriterionMilestone CriterionType = "milestone"
	CriterionNetWorth  CriterionType = "netWorth"
	CriterionAccount   CriterionType = "account"
	CriterionTotalDebt CriterionType = "totalDebt"
	CriterionDebt      CriterionType = "debt"
)

// BuiltinMilestones are milestone ids every plan resolves without declaring.
var BuiltinMilestones = []string{"retirement", "spouseRetirement", "fire"}

// IsBuiltinMilestone reports whether id names a reserved milestone.
func IsBuiltinMilestone(id string) bool {
	for _, b := range BuiltinMilestones {
		if b == id {
			return true
		}
	}
	return false
}

// ConfigBlock names one of a plan's key-merge configuration records.
type ConfigBlock string

const (
	BlockVariables          ConfigBlock = "variables"
	BlockWithdrawalStrategy ConfigBlock = "withdrawalStrategy"
	BlockMonteCarlo         ConfigBlock = "montecarlo"
)
