package domain

// Scope identifies which step template a schedule is projected against.
type Scope string

const (
	ScopeBuilding Scope = "building"
	ScopeUnit     Scope = "unit"
)

// ValidScopes is the canonical set of accepted scope strings.
var ValidScopes = map[string]bool{
	"building": true, "unit": true,
}

// RecordType tags a stored milestone record.
type RecordType string

const (
	RecordBuilding RecordType = "building"
	RecordUnit     RecordType = "unit"
)

// Activation flag names used by conditional steps.
const (
	FlagThird  = "third"
	FlagFourth = "fourth"
)

// FoundationStartKey is the stage whose date may be derived from the
// building anchor when no attested completion exists.
const FoundationStartKey = "foundation_start"

// BuildingItemSK is the sort key of the building-level record inside a
// project#building partition.
const BuildingItemSK = "#building"

// DateLayout is the ISO calendar date format used for every milestone date.
const DateLayout = "2006-01-02"
