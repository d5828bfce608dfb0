package domain

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
)

type ResourceType string

const (
	ResourceVideo  ResourceType = "video"
	ResourceText   ResourceType = "text"
	ResourceCourse ResourceType = "course"
)

// ValidRoles is the canonical set of accepted chat role strings.
var ValidRoles = map[string]bool{
	"user": true, "assistant": true,
}
