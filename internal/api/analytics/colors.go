package analytics

import "FinTrack/internal/entity"

// Fixed display colors per category, shared with the mobile charts. Unknown
// categories fall back to the app primary color.
var categoryColors = map[string]string{
	entity.CategoryFoodAndDining:  "#FF6B6B",
	entity.CategoryTransportation: "#4ECDC4",
	entity.CategoryEntertainment:  "#FFD166",
	entity.CategoryUtilities:      "#06D6A0",
	entity.CategoryHousing:        "#118AB2",
	entity.CategoryShopping:       "#EF476F",
	entity.CategoryHealthcare:     "#073B4C",
	entity.CategoryEducation:      "#7209B7",
	entity.CategoryOther:          "#6A4C93",
}

const defaultCategoryColor = "#7F56D9"

func CategoryColor(category string) string {
	if color, ok := categoryColors[category]; ok {
		return color
	}
	return defaultCategoryColor
}
