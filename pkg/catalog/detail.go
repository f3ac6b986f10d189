package catalog

// Detail is the expanded recipe view.
type Detail struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Meta         []string `json:"meta"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Tips         []string `json:"tips"`
}

// cookingInstructions and chefTips are shared by every recipe; cards carry no steps of their own.
var (
	cookingInstructions = []string{
		"Gather all the ingredients listed above.",
		"Follow the traditional cooking methods for this dish.",
		"Pay attention to cooking times and temperatures.",
		"Season to taste and serve hot.",
		"Enjoy your delicious homemade meal!",
	}
	chefTips = []string{
		"Use fresh ingredients for the best results",
		"Don't rush the cooking process",
		"Experiment with seasonings to suit your taste",
		"Share your creation with loved ones!",
	}
)

// ExpandRecipe composes the detail view from the card plus the shared instructions and tips.
func ExpandRecipe(e Entry) Detail {
	return Detail{
		Name:         e.Name,
		Description:  e.Description,
		Meta:         append([]string(nil), e.Meta...),
		Ingredients:  append([]string(nil), e.Ingredients...),
		Instructions: append([]string(nil), cookingInstructions...),
		Tips:         append([]string(nil), chefTips...),
	}
}
