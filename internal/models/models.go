package models

// All lists every persisted model, in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&CreditCard{},
		&RecurringObligation{},
		&Transaction{},
		&AssetSnapshot{},
		&AssetHistory{},
		&SimulationSettings{},
		&LifeEvent{},
	}
}
