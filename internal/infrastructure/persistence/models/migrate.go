package models

// All lists every model in dependency order for AutoMigrate
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&ServiceModel{},
		&ServiceFeatureModel{},
		&ProjectModel{},
		&ProjectImageModel{},
		&TestimonialModel{},
		&FAQModel{},
		&FlooringTypeModel{},
		&ContactModel{},
		&ScheduleModel{},
		&QuoteModel{},
		&MediaModel{},
	}
}
