package shared

// AggregateRoot marks an entity as the consistency boundary of its aggregate.
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
}

// BaseAggregateRoot adds optimistic-locking support on top of BaseEntity.
type BaseAggregateRoot struct {
	BaseEntity
	Version int
}

func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
	a.Touch()
}
