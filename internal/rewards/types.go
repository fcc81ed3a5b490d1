package rewards

import (
	"fmt"

	"github.com/abhisek/termcommander/internal/profile"
	"github.com/abhisek/termcommander/internal/store"
)

// XPPerLevel is the XP needed per level: reaching level*XPPerLevel at
// a given level promotes to the next.
const XPPerLevel = 100

// DailyBonusXP is awarded when a session starts the day after the last one.
const DailyBonusXP = 5

// Result is the XP and level pair after an award.
type Result struct {
	XP        int
	Level     int
	LeveledUp bool
}

// Notifier is told about level-ups and newly earned badges.
type Notifier interface {
	LevelUp(level int)
	BadgeEarned(badge string)
}

// AwardKind distinguishes entries in the session log.
type AwardKind string

const (
	AwardXP    AwardKind = store.RewardKindXP
	AwardLevel AwardKind = store.RewardKindLevel
	AwardBadge AwardKind = store.RewardKindBadge
)

// Award is one reward granted during the current session.
type Award struct {
	Kind   AwardKind
	Amount int
	Level  int
	Badge  string
}

// Badge names.
const (
	BadgeChallengeBeginner = "Challenge Beginner"
	BadgeChallengeExpert   = "Challenge Expert"
	BadgeChallengeMaster   = "Challenge Master"

	BadgeCommandNovice = "Command Novice"
	BadgeCommandAdept  = "Command Adept"
	BadgeCommandMaster = "Command Master"

	BadgeFileSystemExpert = "File System Expert"
	BadgeNetworkNinja     = "Network Ninja"
	BadgeProcessWizard    = "Process Wizard"
)

// Threshold awards Badge once a count reaches Count.
type Threshold struct {
	Count int
	Badge string
}

// ChallengeThresholds are keyed on the number of completed challenges.
var ChallengeThresholds = []Threshold{
	{3, BadgeChallengeBeginner},
	{10, BadgeChallengeExpert},
	{20, BadgeChallengeMaster},
}

// HistoryThresholds are keyed on the number of learned commands.
var HistoryThresholds = []Threshold{
	{5, BadgeCommandNovice},
	{15, BadgeCommandAdept},
	{30, BadgeCommandMaster},
}

// LevelMasterBadge names the badge for reaching a multiple-of-five level.
func LevelMasterBadge(level int) string {
	return fmt.Sprintf("Level %d Master", level)
}

// OSMasterBadge names the badge for completing every challenge of os.
func OSMasterBadge(os profile.OS) string {
	return os.Title() + " Master"
}
