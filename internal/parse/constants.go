package parse

// ==================== Element Names ====================

const (
	ElementPrice         = "Price"
	ElementFabricate     = "Fabricate"
	ElementDeconstruct   = "Deconstruct"
	ElementLevelResource = "LevelResource"
	ElementCommonness    = "Commonness"
	ElementRequiredItem  = "RequiredItem"
	ElementItem          = "Item"
	ElementRequiredSkill = "RequiredSkill"
)

// materialElements are the two spellings of a recipe ingredient.
var materialElements = []string{ElementRequiredItem, ElementItem}

// ==================== Attribute Names ====================

// Price attributes
const (
	AttrBasePrice      = "baseprice"
	AttrSoldEverywhere = "soldeverywhere"
	AttrLocationType   = "locationtype"
	AttrMultiplier     = "multiplier"
	AttrSold           = "sold"
	AttrMinAvailable   = "minavailable"
)

// Recipe attributes
const (
	AttrRequiredTime        = "requiredtime"
	AttrAmount              = "amount"
	AttrSuitableFabricators = "suitablefabricators"
	AttrIdentifier          = "identifier"
	AttrTag                 = "tag"
	AttrLevel               = "level"
	AttrTime                = "time"
)

// Level resource attributes
const (
	AttrCommonness = "commonness"
	AttrLevelType  = "leveltype"
)

// ==================== Defaults ====================

const (
	DefaultMultiplier   = "1.0"
	DefaultRequiredTime = "0"
	DefaultAmount       = "1"
)

// knownPriceAttrs are the attributes of a per-location Price element that
// the parser interprets.
var knownPriceAttrs = []string{AttrLocationType, AttrMultiplier, AttrSold, AttrMinAvailable}
