package models

import "time"

// ChoiceCount is the fixed number of choices every question carries.
const ChoiceCount = 4

// Category is one of the exam's nine question categories.
type Category string

const (
	CategorySecurityBasics       Category = "情報セキュリティの基礎"
	CategorySecurityLaw          Category = "情報セキュリティ関連法規"
	CategorySecurityManagement   Category = "情報セキュリティ管理"
	CategoryRiskManagement       Category = "リスクマネジメント"
	CategoryTechnicalMeasures    Category = "情報セキュリティ対策（技術）"
	CategoryHumanOrgMeasures     Category = "情報セキュリティ対策（人的・組織的）"
	CategoryNetworkSecurity      Category = "ネットワークとセキュリティ"
	CategoryIncidentResponse     Category = "インシデント対応と事業継続"
	CategoryTechnologyFoundation Category = "テクノロジ系基礎（システム・DB等）"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategorySecurityBasics,
	CategorySecurityLaw,
	CategorySecurityManagement,
	CategoryRiskManagement,
	CategoryTechnicalMeasures,
	CategoryHumanOrgMeasures,
	CategoryNetworkSecurity,
	CategoryIncidentResponse,
	CategoryTechnologyFoundation,
}

// Valid reports whether c is one of the nine known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Level bounds for question difficulty.
const (
	MinLevel = 1
	MaxLevel = 3
)

// LevelLabels maps a difficulty level to its display name.
var LevelLabels = map[int]string{
	1: "基礎",
	2: "応用",
	3: "実践",
}

// ValidLevel reports whether level is within the supported range.
func ValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}

// Question represents one immutable multiple-choice question in the bank.
// Choices always holds exactly ChoiceCount entries and CorrectIndex is a
// valid index into it.
type Question struct {
	ID           int64
	Category     Category
	Level        int
	QuestionNo   int
	QuestionText string
	Choices      []string
	CorrectIndex int
	Explanation  string
	CreatedAt    time.Time
}

// QuestionSeed is the natural-key form used when loading bank content.
// Upserts match on (Category, Level, QuestionNo) and overwrite the text,
// choices, correct index and explanation without changing identity.
type QuestionSeed struct {
	Category     Category
	Level        int
	QuestionNo   int
	QuestionText string
	Choices      []string
	CorrectIndex int
	Explanation  string
}
