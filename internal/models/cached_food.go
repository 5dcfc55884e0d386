package models

import "time"

const (
	FodmapLow     = "low"
	FodmapMedium  = "medium"
	FodmapHigh    = "high"
	FodmapUnknown = "unknown"
)

// CachedFood memoizes one AI classification of a free-text food name.
// Name is the lookup key and is stored lowercased; no other normalization.
type CachedFood struct {
	Name      string    `gorm:"primaryKey" json:"name"`
	Status    string    `gorm:"not null" json:"status"`
	Category  string    `json:"category,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

// BuiltinFood is one row of the shipped FODMAP reference table.
type BuiltinFood struct {
	Status   string
	Category string
}

// DefaultBuiltinFoods returns the built-in FODMAP reference table, keyed by
// lowercased food name. Builtin rows always win over cached AI
// classifications and are never overwritten.
func DefaultBuiltinFoods() map[string]BuiltinFood {
	return map[string]BuiltinFood{
		"milk":        {Status: FodmapHigh, Category: "dairy"},
		"cream":       {Status: FodmapHigh, Category: "dairy"},
		"ice cream":   {Status: FodmapHigh, Category: "dairy"},
		"yogurt":      {Status: FodmapMedium, Category: "dairy"},
		"cheddar":     {Status: FodmapLow, Category: "dairy"},
		"onion":       {Status: FodmapHigh, Category: "vegetable"},
		"garlic":      {Status: FodmapHigh, Category: "vegetable"},
		"leek":        {Status: FodmapHigh, Category: "vegetable"},
		"cauliflower": {Status: FodmapHigh, Category: "vegetable"},
		"carrot":      {Status: FodmapLow, Category: "vegetable"},
		"potato":      {Status: FodmapLow, Category: "vegetable"},
		"spinach":     {Status: FodmapLow, Category: "vegetable"},
		"apple":       {Status: FodmapHigh, Category: "fruit"},
		"pear":        {Status: FodmapHigh, Category: "fruit"},
		"watermelon":  {Status: FodmapHigh, Category: "fruit"},
		"banana":      {Status: FodmapLow, Category: "fruit"},
		"orange":      {Status: FodmapLow, Category: "fruit"},
		"grapes":      {Status: FodmapLow, Category: "fruit"},
		"strawberry":  {Status: FodmapLow, Category: "fruit"},
		"wheat bread": {Status: FodmapHigh, Category: "grain"},
		"rye bread":   {Status: FodmapHigh, Category: "grain"},
		"pasta":       {Status: FodmapMedium, Category: "grain"},
		"rice":        {Status: FodmapLow, Category: "grain"},
		"oats":        {Status: FodmapLow, Category: "grain"},
		"quinoa":      {Status: FodmapLow, Category: "grain"},
		"beans":       {Status: FodmapHigh, Category: "legume"},
		"lentils":     {Status: FodmapMedium, Category: "legume"},
		"chickpeas":   {Status: FodmapMedium, Category: "legume"},
		"cashews":     {Status: FodmapHigh, Category: "nuts"},
		"pistachios":  {Status: FodmapHigh, Category: "nuts"},
		"almonds":     {Status: FodmapMedium, Category: "nuts"},
		"peanuts":     {Status: FodmapLow, Category: "nuts"},
		"honey":       {Status: FodmapHigh, Category: "sweetener"},
		"sugar":       {Status: FodmapLow, Category: "sweetener"},
		"chicken":     {Status: FodmapLow, Category: "protein"},
		"beef":        {Status: FodmapLow, Category: "protein"},
		"salmon":      {Status: FodmapLow, Category: "protein"},
		"eggs":        {Status: FodmapLow, Category: "protein"},
		"tofu":        {Status: FodmapLow, Category: "protein"},
	}
}
