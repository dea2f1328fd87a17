package domain

// Skill is the closed set of staff designations. Work items require exactly
// one skill and assignment uses exact equality, so both sides share this type.
type Skill string

const (
	SkillDeveloper Skill = "developer"
	SkillQA        Skill = "qa"
	SkillDesigner  Skill = "designer"
	SkillAnalyst   Skill = "analyst"
)

// ValidSkills is the canonical set of accepted skill strings.
var ValidSkills = map[string]bool{
	"developer": true, "qa": true, "designer": true, "analyst": true,
}

type CompletionStatus string

const (
	CompletionNone   CompletionStatus = ""
	CompletionOnTime CompletionStatus = "on_time"
	CompletionLate   CompletionStatus = "late"
)

// VersionChange classifies how a work item's assignment moved between two
// generations. First-time scheduling produces no version record at all.
type VersionChange string

const (
	ChangeRescheduled VersionChange = "rescheduled"
	ChangeReassigned  VersionChange = "reassigned"
)
