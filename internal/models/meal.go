package models

// MenuItem is a single dish with its decoded allergen names.
type MenuItem struct {
	Name        string   `json:"name"`
	AllergyTags []string `json:"allergyTags"`
}

// MealSlot holds the menu and the raw calorie string for one meal of the day.
type MealSlot struct {
	Menu     []MenuItem `json:"menu"`
	Calories string     `json:"calories"`
}

// MealSet groups the three daily meal slots.
type MealSet struct {
	Breakfast MealSlot `json:"breakfast"`
	Lunch     MealSlot `json:"lunch"`
	Dinner    MealSlot `json:"dinner"`
}

// EmptySlot returns the default slot used when the upstream has no row for a
// meal type.
func EmptySlot() MealSlot {
	return MealSlot{Menu: []MenuItem{}, Calories: "0 Kcal"}
}

// EmptyMealSet returns the all-empty three-slot default structure.
func EmptyMealSet() MealSet {
	return MealSet{
		Breakfast: EmptySlot(),
		Lunch:     EmptySlot(),
		Dinner:    EmptySlot(),
	}
}

// AllergyNames maps the 19 NEIS allergen codes embedded in dish strings to
// their Korean names. The table is fixed nationwide.
var AllergyNames = map[string]string{
	"1":  "난류",
	"2":  "우유",
	"3":  "메밀",
	"4":  "땅콩",
	"5":  "대두",
	"6":  "밀",
	"7":  "고등어",
	"8":  "게",
	"9":  "새우",
	"10": "돼지고기",
	"11": "복숭아",
	"12": "토마토",
	"13": "아황산류",
	"14": "호두",
	"15": "닭고기",
	"16": "쇠고기",
	"17": "오징어",
	"18": "조개류",
	"19": "잣",
}
