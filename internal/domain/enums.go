package domain

type ItemKind string

const (
	KindTask ItemKind = "task"
	KindNote ItemKind = "note"
)

// ValidItemKinds is the canonical set of accepted item kind strings.
var ValidItemKinds = map[string]bool{
	"task": true, "note": true,
}

type ItemStatus string

const (
	ItemOpen    ItemStatus = "open"
	ItemDone    ItemStatus = "done"
	ItemDropped ItemStatus = "dropped"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "normal": true, "high": true,
}
