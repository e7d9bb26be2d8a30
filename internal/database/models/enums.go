package models

// RelationKind selects which uniquely-keyed user relation a toggle
// operation targets
type RelationKind string

const (
	RelationFavorite     RelationKind = "favorite"
	RelationShoppingCart RelationKind = "shopping_cart"
	RelationFollow       RelationKind = "follow"
)
