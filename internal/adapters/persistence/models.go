package persistence

// RecipeModel represents the recipes table. Ingredient slots are
// nullable column pairs mirroring the catalog's fixed shape (four
// inputs, two outputs).
type RecipeModel struct {
	ID               int     `gorm:"column:id;primaryKey;autoIncrement"`
	Building         string  `gorm:"column:building;not null"`
	Name             string  `gorm:"column:name;unique;not null"`
	CraftTimeSeconds float64 `gorm:"column:craft_time_s;not null"`
	IsAlt            bool    `gorm:"column:is_alt;not null;default:false"`
	Unlocks          string  `gorm:"column:unlocks"`
	IsUnlocked       bool    `gorm:"column:is_unlocked;not null;default:false"`

	In1Part *string  `gorm:"column:in_1_part"`
	In1Qty  *float64 `gorm:"column:in_1_qty"`
	In2Part *string  `gorm:"column:in_2_part"`
	In2Qty  *float64 `gorm:"column:in_2_qty"`
	In3Part *string  `gorm:"column:in_3_part"`
	In3Qty  *float64 `gorm:"column:in_3_qty"`
	In4Part *string  `gorm:"column:in_4_part"`
	In4Qty  *float64 `gorm:"column:in_4_qty"`

	Out1Part *string  `gorm:"column:out_1_part"`
	Out1Qty  *float64 `gorm:"column:out_1_qty"`
	Out2Part *string  `gorm:"column:out_2_part"`
	Out2Qty  *float64 `gorm:"column:out_2_qty"`
}

func (RecipeModel) TableName() string {
	return "recipes"
}
