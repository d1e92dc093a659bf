package domain

type InsightKind string

const (
	InsightInfo    InsightKind = "info"
	InsightWarning InsightKind = "warning"
)

type Priority string

const (
	PriorityLow  Priority = "low"
	PriorityHigh Priority = "high"
)

type Insight struct {
	Kind              InsightKind
	Title             string
	Message           string
	RecommendedAction string
	Priority          Priority
}
