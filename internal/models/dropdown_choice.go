package models

const (
	ChoiceTypeRoomType         = "room_type"
	ChoiceTypeFloorType        = "floor_type"
	ChoiceTypeWallFinish       = "wall_finish"
	ChoiceTypePurchaseCategory = "purchase_category"
	ChoiceTypeVendor           = "vendor"
)

type DropdownChoice struct {
	ID           uint   `gorm:"primaryKey"`
	ChoiceType   string `gorm:"not null;uniqueIndex:uidx_choice_type_value"`
	Value        string `gorm:"not null;uniqueIndex:uidx_choice_type_value"`
	LabelPL      string `gorm:"not null"`
	LabelEN      string `gorm:"not null"`
	DisplayOrder int    `gorm:"not null;default:0"`
	IsActive     bool   `gorm:"not null;default:true"`
}

// Label returns the localized label with a Polish fallback.
func (choice *DropdownChoice) Label(language string) string {
	if language == "en" && choice.LabelEN != "" {
		return choice.LabelEN
	}
	return choice.LabelPL
}

func ChoiceTypes() []string {
	return []string{
		ChoiceTypeRoomType,
		ChoiceTypeFloorType,
		ChoiceTypeWallFinish,
		ChoiceTypePurchaseCategory,
		ChoiceTypeVendor,
	}
}

// DefaultDropdownChoices is the compiled-in reference table used both to
// seed an empty database and as the fallback when a choice type has no
// active rows.
func DefaultDropdownChoices() []DropdownChoice {
	return []DropdownChoice{
		{ChoiceType: ChoiceTypeRoomType, Value: "salon", LabelPL: "Salon", LabelEN: "Living Room", DisplayOrder: 10, IsActive: true},
		{ChoiceType: ChoiceTypeRoomType, Value: "sypialnia", LabelPL: "Sypialnia", LabelEN: "Bedroom", DisplayOrder: 20, IsActive: true},
		{ChoiceType: ChoiceTypeRoomType, Value: "kuchnia", LabelPL: "Kuchnia", LabelEN: "Kitchen", DisplayOrder: 30, IsActive: true},
		{ChoiceType: ChoiceTypeRoomType, Value: "lazienka", LabelPL: "Łazienka", LabelEN: "Bathroom", DisplayOrder: 40, IsActive: true},
		{ChoiceType: ChoiceTypeRoomType, Value: "ubikacja", LabelPL: "Ubikacja", LabelEN: "Toilet", DisplayOrder: 50, IsActive: true},
		{ChoiceType: ChoiceTypeRoomType, Value: "pokoj_dzieciecy", LabelPL: "Pokój Dziecięcy", LabelEN: "Children's Room", DisplayOrder: 60, IsActive: true},
		{ChoiceType: ChoiceTypeRoomType, Value: "biuro", LabelPL: "Biuro", LabelEN: "Office", DisplayOrder: 70, IsActive: true},
		{ChoiceType: ChoiceTypeRoomType, Value: "korytarz", LabelPL: "Korytarz", LabelEN: "Hallway", DisplayOrder: 80, IsActive: true},
		{ChoiceType: ChoiceTypeRoomType, Value: "loggia", LabelPL: "Loggia", LabelEN: "Loggia", DisplayOrder: 90, IsActive: true},

		{ChoiceType: ChoiceTypeFloorType, Value: "plytki", LabelPL: "Płytki", LabelEN: "Tiles", DisplayOrder: 10, IsActive: true},
		{ChoiceType: ChoiceTypeFloorType, Value: "panele", LabelPL: "Panele", LabelEN: "Panels", DisplayOrder: 20, IsActive: true},
		{ChoiceType: ChoiceTypeFloorType, Value: "parkiet", LabelPL: "Parkiet", LabelEN: "Parquet", DisplayOrder: 30, IsActive: true},
		{ChoiceType: ChoiceTypeFloorType, Value: "wykladzina_dywanowa", LabelPL: "Wykładzina dywanowa", LabelEN: "Carpet", DisplayOrder: 40, IsActive: true},

		{ChoiceType: ChoiceTypeWallFinish, Value: "farba", LabelPL: "Farba", LabelEN: "Paint", DisplayOrder: 10, IsActive: true},
		{ChoiceType: ChoiceTypeWallFinish, Value: "tapeta", LabelPL: "Tapeta", LabelEN: "Wallpaper", DisplayOrder: 20, IsActive: true},
		{ChoiceType: ChoiceTypeWallFinish, Value: "plytki", LabelPL: "Płytki", LabelEN: "Tiles", DisplayOrder: 30, IsActive: true},
		{ChoiceType: ChoiceTypeWallFinish, Value: "fototapeta", LabelPL: "Fototapeta", LabelEN: "Photo Wallpaper", DisplayOrder: 40, IsActive: true},
		{ChoiceType: ChoiceTypeWallFinish, Value: "sztukateria", LabelPL: "Sztukateria", LabelEN: "Stucco", DisplayOrder: 50, IsActive: true},
		{ChoiceType: ChoiceTypeWallFinish, Value: "boazeria", LabelPL: "Boazeria", LabelEN: "Wainscoting", DisplayOrder: 60, IsActive: true},
		{ChoiceType: ChoiceTypeWallFinish, Value: "panele_scienne", LabelPL: "Panele ścienne", LabelEN: "Wall Panels", DisplayOrder: 70, IsActive: true},
		{ChoiceType: ChoiceTypeWallFinish, Value: "kamien_dekoracyjny", LabelPL: "Kamień dekoracyjny", LabelEN: "Decorative Stone", DisplayOrder: 80, IsActive: true},
		{ChoiceType: ChoiceTypeWallFinish, Value: "beton_architektoniczny", LabelPL: "Beton architektoniczny", LabelEN: "Architectural Concrete", DisplayOrder: 90, IsActive: true},
		{ChoiceType: ChoiceTypeWallFinish, Value: "mikrocement", LabelPL: "Mikrocement", LabelEN: "Microcement", DisplayOrder: 100, IsActive: true},

		{ChoiceType: ChoiceTypePurchaseCategory, Value: "equipment", LabelPL: "Sprzęt", LabelEN: "Equipment", DisplayOrder: 10, IsActive: true},
		{ChoiceType: ChoiceTypePurchaseCategory, Value: "materials", LabelPL: "Materiały", LabelEN: "Materials", DisplayOrder: 20, IsActive: true},
		{ChoiceType: ChoiceTypePurchaseCategory, Value: "labor", LabelPL: "Robocizna", LabelEN: "Labor", DisplayOrder: 30, IsActive: true},
		{ChoiceType: ChoiceTypePurchaseCategory, Value: "fuel", LabelPL: "Paliwo", LabelEN: "Fuel", DisplayOrder: 40, IsActive: true},
		{ChoiceType: ChoiceTypePurchaseCategory, Value: "tools", LabelPL: "Narzędzia", LabelEN: "Tools", DisplayOrder: 50, IsActive: true},
		{ChoiceType: ChoiceTypePurchaseCategory, Value: "electrical", LabelPL: "Elektryka", LabelEN: "Electrical", DisplayOrder: 60, IsActive: true},
		{ChoiceType: ChoiceTypePurchaseCategory, Value: "plumbing", LabelPL: "Hydraulika", LabelEN: "Plumbing", DisplayOrder: 70, IsActive: true},
		{ChoiceType: ChoiceTypePurchaseCategory, Value: "other", LabelPL: "Inne", LabelEN: "Other", DisplayOrder: 80, IsActive: true},

		{ChoiceType: ChoiceTypeVendor, Value: "allegro", LabelPL: "Allegro", LabelEN: "Allegro", DisplayOrder: 10, IsActive: true},
		{ChoiceType: ChoiceTypeVendor, Value: "castorama", LabelPL: "Castorama", LabelEN: "Castorama", DisplayOrder: 20, IsActive: true},
		{ChoiceType: ChoiceTypeVendor, Value: "leroy_merlin", LabelPL: "Leroy Merlin", LabelEN: "Leroy Merlin", DisplayOrder: 30, IsActive: true},
		{ChoiceType: ChoiceTypeVendor, Value: "brico", LabelPL: "Brico", LabelEN: "Brico", DisplayOrder: 40, IsActive: true},
		{ChoiceType: ChoiceTypeVendor, Value: "obi", LabelPL: "OBI", LabelEN: "OBI", DisplayOrder: 50, IsActive: true},
		{ChoiceType: ChoiceTypeVendor, Value: "bricomarche", LabelPL: "Bricomarché", LabelEN: "Bricomarché", DisplayOrder: 60, IsActive: true},
		{ChoiceType: ChoiceTypeVendor, Value: "other", LabelPL: "Inny", LabelEN: "Other", DisplayOrder: 100, IsActive: true},
	}
}

// DefaultDropdownChoicesFor filters the compiled-in table to one type.
func DefaultDropdownChoicesFor(choiceType string) []DropdownChoice {
	choices := make([]DropdownChoice, 0)
	for _, choice := range DefaultDropdownChoices() {
		if choice.ChoiceType == choiceType {
			choices = append(choices, choice)
		}
	}
	return choices
}
