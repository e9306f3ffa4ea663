package schema

// stringField is shorthand for an anonymous string element descriptor.
var stringField = &Field{Kind: String}

// DateRange is the shared duration entity for work and education entries.
// The object itself is nullable where it is referenced; when present, both
// start and end must be present.
var DateRange = &Entity{
	Name: "duration",
	Fields: []Field{
		{Name: "start", Kind: String, Required: true, Pattern: PartialDate},
		{Name: "end", Kind: String, Required: true, Pattern: PartialDate},
	},
}

// ContactInformation declares the candidate contact entity.
var ContactInformation = &Entity{
	Name: "contactInformation",
	Fields: []Field{
		{Name: "firstName", Kind: String, Required: true},
		{Name: "lastName", Kind: String, Required: true},
		{Name: "email", Kind: String, Required: true, Pattern: Email},
		{Name: "country", Kind: String, Required: true},
		{Name: "phone", Kind: String, Nullable: true, Pattern: Phone},
		{Name: "address", Kind: String, Nullable: true},
		{Name: "city", Kind: String, Nullable: true},
		{Name: "state", Kind: String, Nullable: true},
		{Name: "zipCode", Kind: String, Nullable: true},
	},
}

// WorkHistoryItem declares a single employment entry.
var WorkHistoryItem = &Entity{
	Name: "workHistoryItem",
	Fields: []Field{
		{Name: "workPositionOrTitle", Kind: String, Required: true},
		{Name: "workForCompanyName", Kind: String, Required: true},
		{Name: "workLocationOrRemote", Kind: String, Required: true},
		{Name: "duration", Kind: Object, Required: true, Nullable: true, Entity: DateRange},
		{Name: "workResponsibilitiesAccomplishments", Kind: Array, Required: true, Elem: stringField},
	},
}

// EducationHistoryItem declares a single education entry.
var EducationHistoryItem = &Entity{
	Name: "educationHistoryItem",
	Fields: []Field{
		{Name: "institution", Kind: String, Required: true},
		{Name: "degree", Kind: String, Required: true},
		{Name: "duration", Kind: Object, Required: true, Nullable: true, Entity: DateRange},
		{Name: "majors", Kind: Array, Nullable: true, Elem: stringField},
		{Name: "minors", Kind: Array, Nullable: true, Elem: stringField},
		{Name: "gradePointAverage", Kind: String, Nullable: true},
	},
}

// Resume declares the root resume entity.
var Resume = &Entity{
	Name: "resume",
	Fields: []Field{
		{Name: "contactInformation", Kind: Object, Required: true, Entity: ContactInformation},
		{Name: "workHistory", Kind: Array, Required: true, Elem: &Field{Kind: Object, Entity: WorkHistoryItem}},
		{Name: "educationHistory", Kind: Array, Required: true, Elem: &Field{Kind: Object, Entity: EducationHistoryItem}},
		{Name: "skills", Kind: Array, Nullable: true, Elem: stringField},
		{Name: "certifications", Kind: Array, Nullable: true, Elem: stringField},
		{Name: "publications", Kind: Array, Nullable: true, Elem: stringField},
		{Name: "patents", Kind: Array, Nullable: true, Elem: stringField},
		{Name: "websites", Kind: Array, Nullable: true, Elem: stringField},
	},
}
