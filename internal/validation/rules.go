package validation

import "fastfood/internal/model"

// Rules is the published form of the rule set, consumed by the browser forms.
type Rules struct {
	Product ProductRules `json:"product"`
	Order   OrderRules   `json:"order"`
}

// ProductRules describes the admin product form.
type ProductRules struct {
	NameMinLength        int      `json:"nameMinLength"`
	NameMaxLength        int      `json:"nameMaxLength"`
	DescriptionMinLength int      `json:"descriptionMinLength"`
	PriceMustBePositive  bool     `json:"priceMustBePositive"`
	PriceMaxDecimals     int      `json:"priceMaxDecimals"`
	Categories           []string `json:"categories"`
	ImageMaxLength       int      `json:"imageMaxLength"`
	ImageURLSchemes      []string `json:"imageUrlSchemes"`
	LocalImagePattern    Pattern  `json:"localImagePattern"`
}

// OrderRules describes the checkout form.
type OrderRules struct {
	CustomerNamePattern   Pattern  `json:"customerNamePattern"`
	CustomerNameMaxLength int      `json:"customerNameMaxLength"`
	PhonePattern          Pattern  `json:"phonePattern"`
	PaymentMethods        []string `json:"paymentMethods"`
	EmailOptional         bool     `json:"emailOptional"`
	EmailMaxLength        int      `json:"emailMaxLength"`
	MinProducts           int      `json:"minProducts"`
	AmountMaxDecimals     int      `json:"amountMaxDecimals"`
}

// Pattern is a regular expression with its flags.
type Pattern struct {
	Source string `json:"source"`
	Flags  string `json:"flags,omitempty"`
}

// Describe returns the rule set enforced by Validator.
func Describe() Rules {
	return Rules{
		Product: ProductRules{
			NameMinLength:        ProductNameMinLength,
			NameMaxLength:        ProductNameMaxLength,
			DescriptionMinLength: ProductDescriptionMinLength,
			PriceMustBePositive:  true,
			PriceMaxDecimals:     MoneyDecimals,
			Categories:           append([]string(nil), model.Categories...),
			ImageMaxLength:       ImageMaxLength,
			ImageURLSchemes:      []string{"http", "https"},
			LocalImagePattern:    Pattern{Source: LocalImageExpr, Flags: "i"},
		},
		Order: OrderRules{
			CustomerNamePattern:   Pattern{Source: CustomerNameExpr},
			CustomerNameMaxLength: CustomerNameMaxLength,
			PhonePattern:          Pattern{Source: PhoneExpr},
			PaymentMethods:        append([]string(nil), model.PaymentMethods...),
			EmailOptional:         true,
			EmailMaxLength:        EmailMaxLength,
			MinProducts:           1,
			AmountMaxDecimals:     MoneyDecimals,
		},
	}
}
