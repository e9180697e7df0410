package types

// EntityID identifies an entity. IDs are handed out in increasing order,
// so sorting them yields spawn order.
type EntityID uint64
