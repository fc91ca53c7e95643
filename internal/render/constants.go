package render

// Link image sizes
const (
	MaterialLinkSize = 30
	DisplayImageSize = 50
)

// Separators
const (
	CellSeparator    = " <br> "
	InfoboxSeparator = "\n"
	NoSkills         = "None"
)

// Deconstruct column values
const (
	NotDeconstructable = "Not deconstructable"
	SameAsRecipe       = "-"
)

// unresolvedMaterial stands in for tag materials when a fabrication recipe
// is compared with a deconstruction recipe. It never equals a real id.
const unresolvedMaterial = "\x00unresolved"

// WireTag is the only material tag with a representative item.
const WireTag = "wire"

// tagRepresentatives maps resolvable material tags to the item linked in
// their place.
var tagRepresentatives = map[string]string{
	WireTag: "wire",
}

// knownSkills lists the skill ids a recipe may require.
var knownSkills = []string{"electrical", "helm", "mechanical", "medical", "weapons"}

// pictureOverrides maps item ids to wiki image names that do not follow the
// display name convention in the deconstruction table.
var pictureOverrides = map[string]string{
	"smallmudraptoregg": "Mudraptor_Egg_Small",
	"peanutegg":         "Strange Eggs",
}

// Group is a set of interchangeable items shown as a single row in the
// fabrication table.
type Group struct {
	Tags       []string // members carry at least one of these
	Exceptions []string // ids rendered as ordinary rows
	Display    string   // replaces the item cell of the collapsed row
}

// Groups is the ordered list of collapsed fabrication groups.
var Groups = []Group{
	{
		Tags:       []string{"logic", "signal"},
		Exceptions: []string{"fpgacircuit"},
		Display:    "[[File:Wiring Components.png| |90px|link=Wiring Components]] <br> [[Wiring Components]]",
	},
	{
		Tags:    []string{"sensor"},
		Display: "[[File:Detectors.png| |90px|link=Detectors]] <br> [[Detectors]]",
	},
	{
		Tags:    []string{"wire"},
		Display: "[[File:Wire.png| |50px|link=Wire]] <br> [[Wire]]",
	},
}

// Blacklists
var (
	FabricationBlacklist    = []string{"lightcomponent90"}
	DeconstructionBlacklist = []string{"wire", "psilotoadegg", "balloonegg", "orangeboyegg"}
)

// Table markup
const (
	fabricationHeader = `{| class="wikitable sortable" style="width: 50%; font-size: 90%;"
! style="width: 15%" | Item
! style="width: 30%" | Materials to Craft 
! style="width: 10%" | Time (seconds)
! style="width: 15%" | Skill 
! style="width: 30%" | <abbr title="If different from the crafting recipe">Deconstructs to</abbr>
`
	deconstructionHeader = `{| class="wikitable sortable" style="width: 30%; font-size: 90%;"
! style="width: 40%" | Item
! style="width: 20%" | Time (seconds)
! style="width: 60%" | Deconstructs to
`
	tableFooter = "|-\n|}\n"
)

// Infobox conventions
const (
	CategoryOre = "ore"

	// InfoboxFabricator is the only station infoboxes can describe.
	InfoboxFabricator = "fabricator"

	MineralKind         = "mineral"
	MineralImageSuffix  = "_Mineral.png"
	ImageExtension      = ".png"
	MineralSpriteLegend = "Sprite in the environment"
)

// InfoboxLocations are the location types listed in infoboxes, in order.
var InfoboxLocations = []string{"outpost", "city", "research", "military", "mine"}

// DefaultBiomeLevel falls back to the default commonness when absent.
const DefaultBiomeLevel = "coldcaverns"

// biomeLevels pairs level types with the wiki's biome field names, in output order.
var biomeLevels = []struct {
	Level string
	Biome string
}{
	{DefaultBiomeLevel, "coldcaverns"},
	{"ridgebasic", "europanridge"},
	{"plateaubasic", "theaphoticplateau"},
	{"greatseabasic", "thegreatsea"},
	{"wastesbasic", "hydrothermalwastes"},
}

// CSV layout
const CSVNameColumn = "name"
