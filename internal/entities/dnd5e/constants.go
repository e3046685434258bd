package dnd5e

// Race constants
const (
	RaceHuman      = "RACE_HUMAN"
	RaceDwarf      = "RACE_DWARF"
	RaceElf        = "RACE_ELF"
	RaceHalfling   = "RACE_HALFLING"
	RaceDragonborn = "RACE_DRAGONBORN"
	RaceGnome      = "RACE_GNOME"
	RaceHalfElf    = "RACE_HALF_ELF"
	RaceHalfOrc    = "RACE_HALF_ORC"
	RaceTiefling   = "RACE_TIEFLING"
)

// Subrace constants
const (
	SubraceHighElf           = "SUBRACE_HIGH_ELF"
	SubraceWoodElf           = "SUBRACE_WOOD_ELF"
	SubraceDarkElf           = "SUBRACE_DARK_ELF"
	SubraceHillDwarf         = "SUBRACE_HILL_DWARF"
	SubraceMountainDwarf     = "SUBRACE_MOUNTAIN_DWARF"
	SubraceLightfootHalfling = "SUBRACE_LIGHTFOOT_HALFLING"
	SubraceStoutHalfling     = "SUBRACE_STOUT_HALFLING"
	SubraceForestGnome       = "SUBRACE_FOREST_GNOME"
	SubraceRockGnome         = "SUBRACE_ROCK_GNOME"
)

// Class constants
const (
	ClassBarbarian = "CLASS_BARBARIAN"
	ClassBard      = "CLASS_BARD"
	ClassCleric    = "CLASS_CLERIC"
	ClassDruid     = "CLASS_DRUID"
	ClassFighter   = "CLASS_FIGHTER"
	ClassMonk      = "CLASS_MONK"
	ClassPaladin   = "CLASS_PALADIN"
	ClassRanger    = "CLASS_RANGER"
	ClassRogue     = "CLASS_ROGUE"
	ClassSorcerer  = "CLASS_SORCERER"
	ClassWarlock   = "CLASS_WARLOCK"
	ClassWizard    = "CLASS_WIZARD"
)

// Background constants
const (
	BackgroundAcolyte      = "BACKGROUND_ACOLYTE"
	BackgroundCharlatan    = "BACKGROUND_CHARLATAN"
	BackgroundCriminal     = "BACKGROUND_CRIMINAL"
	BackgroundEntertainer  = "BACKGROUND_ENTERTAINER"
	BackgroundFolkHero     = "BACKGROUND_FOLK_HERO"
	BackgroundGuildArtisan = "BACKGROUND_GUILD_ARTISAN"
	BackgroundHermit       = "BACKGROUND_HERMIT"
	BackgroundNoble        = "BACKGROUND_NOBLE"
	BackgroundOutlander    = "BACKGROUND_OUTLANDER"
	BackgroundSage         = "BACKGROUND_SAGE"
	BackgroundSailor       = "BACKGROUND_SAILOR"
	BackgroundSoldier      = "BACKGROUND_SOLDIER"
	BackgroundUrchin       = "BACKGROUND_URCHIN"
)

// Feat constants
const (
	FeatAlert       = "FEAT_ALERT"
	FeatGrappler    = "FEAT_GRAPPLER"
	FeatLucky       = "FEAT_LUCKY"
	FeatObservant   = "FEAT_OBSERVANT"
	FeatResilient   = "FEAT_RESILIENT"
	FeatToughness   = "FEAT_TOUGH"
	FeatWarCaster   = "FEAT_WAR_CASTER"
	FeatHeavyArmor  = "FEAT_HEAVILY_ARMORED"
	FeatMediumArmor = "FEAT_MODERATELY_ARMORED"
)

// Armor constants. Any other armor id is looked up through the armor detail fetcher.
const (
	ArmorNone        = "none"
	ArmorPadded      = "EQUIPMENT_PADDED_ARMOR"
	ArmorLeather     = "EQUIPMENT_LEATHER_ARMOR"
	ArmorStudded     = "EQUIPMENT_STUDDED_LEATHER_ARMOR"
	ArmorHide        = "EQUIPMENT_HIDE_ARMOR"
	ArmorChainShirt  = "EQUIPMENT_CHAIN_SHIRT"
	ArmorScaleMail   = "EQUIPMENT_SCALE_MAIL"
	ArmorBreastplate = "EQUIPMENT_BREASTPLATE"
	ArmorHalfPlate   = "EQUIPMENT_HALF_PLATE_ARMOR"
	ArmorRingMail    = "EQUIPMENT_RING_MAIL"
	ArmorChainMail   = "EQUIPMENT_CHAIN_MAIL"
	ArmorSplint      = "EQUIPMENT_SPLINT_ARMOR"
	ArmorPlate       = "EQUIPMENT_PLATE_ARMOR"
)

// Ability keys used in ability score improvement maps
const (
	AbilityStrength     = "strength"
	AbilityDexterity    = "dexterity"
	AbilityConstitution = "constitution"
	AbilityIntelligence = "intelligence"
	AbilityWisdom       = "wisdom"
	AbilityCharisma     = "charisma"
)

// Skill constants, already in canonical form
const (
	SkillAcrobatics     = "acrobatics"
	SkillAnimalHandling = "animal-handling"
	SkillArcana         = "arcana"
	SkillAthletics      = "athletics"
	SkillDeception      = "deception"
	SkillHistory        = "history"
	SkillInsight        = "insight"
	SkillIntimidation   = "intimidation"
	SkillInvestigation  = "investigation"
	SkillMedicine       = "medicine"
	SkillNature         = "nature"
	SkillPerception     = "perception"
	SkillPerformance    = "performance"
	SkillPersuasion     = "persuasion"
	SkillReligion       = "religion"
	SkillSleightOfHand  = "sleight-of-hand"
	SkillStealth        = "stealth"
	SkillSurvival       = "survival"
)

// AllAbilities lists the six abilities in sheet order
var AllAbilities = []string{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}
