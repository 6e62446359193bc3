package progress

import (
	"SkinSense-Backend/domain"
)

// Static care-plan templates keyed by issue name. Unknown issues fall back
// to the Acne plan.
var healingPlanTemplates = map[string]domain.HealingPlan{
	"Acne": {
		Overview: "Acne is a common skin condition caused by clogged pores, bacteria, and inflammation. With consistent care and the right products, most acne can be significantly improved within 6-12 weeks.",
		CommonCauses: []string{
			"Excess oil production",
			"Clogged hair follicles",
			"Bacteria (P. acnes)",
			"Hormonal changes",
			"Stress and diet",
		},
		DailyRoutine: domain.DailyRoutine{
			Morning: []string{
				"Cleanse with salicylic acid cleanser",
				"Apply niacinamide serum",
				"Moisturize with oil-free moisturizer",
				"Apply SPF 30+ sunscreen",
			},
			Evening: []string{
				"Double cleanse (oil cleanser + water-based cleanser)",
				"Apply benzoyl peroxide or retinoid treatment",
				"Use lightweight moisturizer",
				"Spot treat active breakouts",
			},
		},
		Ingredients: []string{
			"Salicylic Acid (2%)",
			"Benzoyl Peroxide (2.5-5%)",
			"Niacinamide",
			"Retinoids",
			"Azelaic Acid",
		},
		LifestyleChanges: []string{
			"Change pillowcases regularly",
			"Avoid touching your face",
			"Stay hydrated (8+ glasses water daily)",
			"Reduce dairy and high-glycemic foods",
			"Manage stress through exercise or meditation",
			"Get 7-9 hours of sleep",
		},
	},
	"Dark Spots": {
		Overview: "Dark spots (hyperpigmentation) are caused by excess melanin production. With consistent use of brightening ingredients and sun protection, most dark spots fade within 3-6 months.",
		CommonCauses: []string{
			"Sun exposure",
			"Post-inflammatory hyperpigmentation",
			"Hormonal changes",
			"Aging",
			"Skin injuries",
		},
		DailyRoutine: domain.DailyRoutine{
			Morning: []string{
				"Cleanse gently",
				"Apply vitamin C serum",
				"Use brightening moisturizer",
				"Apply SPF 50+ sunscreen (crucial!)",
			},
			Evening: []string{
				"Gentle cleanser",
				"Apply alpha arbutin or kojic acid",
				"Use retinol or retinoid",
				"Moisturize well",
			},
		},
		Ingredients: []string{
			"Vitamin C (L-Ascorbic Acid)",
			"Alpha Arbutin",
			"Kojic Acid",
			"Niacinamide",
			"Retinol",
			"Tranexamic Acid",
		},
		LifestyleChanges: []string{
			"Wear sunscreen daily (even indoors)",
			"Wear a hat outdoors",
			"Avoid picking at skin",
			"Stay hydrated",
			"Eat antioxidant-rich foods",
			"Consider professional treatments (chemical peels, laser)",
		},
	},
	"Fine Lines": {
		Overview: "Fine lines are early signs of aging caused by collagen loss and environmental damage. With proper care, fine lines can be minimized and further aging can be prevented.",
		CommonCauses: []string{
			"Natural aging process",
			"Sun damage",
			"Dehydration",
			"Smoking",
			"Repetitive facial expressions",
		},
		DailyRoutine: domain.DailyRoutine{
			Morning: []string{
				"Gentle cleanser",
				"Hydrating toner",
				"Vitamin C serum",
				"Eye cream",
				"Moisturizer with peptides",
				"SPF 50+ sunscreen",
			},
			Evening: []string{
				"Gentle cleanser",
				"Retinol or retinoid",
				"Hydrating serum",
				"Rich moisturizer",
				"Eye cream",
			},
		},
		Ingredients: []string{
			"Retinol/Retinoids",
			"Peptides",
			"Hyaluronic Acid",
			"Vitamin C",
			"Niacinamide",
			"Ceramides",
		},
		LifestyleChanges: []string{
			"Sleep on your back",
			"Stay well hydrated",
			"Quit smoking",
			"Reduce alcohol consumption",
			"Use a humidifier",
			"Facial massage or gua sha",
			"Consider professional treatments (Botox, fillers, microneedling)",
		},
	},
}
