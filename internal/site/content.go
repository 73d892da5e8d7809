package site

import (
	"github.com/0tsuro/SparkCar/internal/comparison"
	"github.com/0tsuro/SparkCar/internal/model"
)

// DefaultSlides returns the before/after pairs shown in the services section.
func DefaultSlides() []model.SlidePair {
	return []model.SlidePair{
		model.NewSlidePair("/cleanmerco1.svg", "/cleanmerco2.svg", "Mercedes GLC", "Formule Premium",
			"Shampoing des tapis, moquettes, sièges et tissus",
			"Protection UV des plastiques intérieurs",
			"Désinfection des surfaces à la vapeur",
		),
		model.NewSlidePair("/cleanporsche1.svg", "/cleanporsche2.svg", "Porsche 987", "Formule Extérieur",
			"Prélavage à la mousse active",
			"Lavage manuel de la carrosserie",
			"Traitement céramique déperlant (3 mois)",
		),
		model.NewSlidePair("/cleancoffre1.svg", "/cleancoffre2.svg", "Mercedes GLC", "Formule Deluxe",
			"Désinfection des surfaces à la vapeur",
			"Shampoing intégral des sièges et tissus",
			"Nettoyage des contours de portes et du coffre",
		),
	}
}

// DefaultSlideSet wraps DefaultSlides for the comparison controller.
func DefaultSlideSet() comparison.SlideSet {
	set, err := comparison.NewSlideSet(DefaultSlides()...)
	if err != nil {
		// DefaultSlides is a non-empty literal
		panic(err)
	}
	return set
}

func Plans() []model.PricingPlan {
	return []model.PricingPlan{
		{
			Tier:      model.PlanTierStandard,
			Name:      "Standard",
			PriceFrom: 49,
			Features: []string{
				"Nettoyage extérieur complet",
				"Aspiration intérieure rapide",
				"Vitres intérieures / extérieures",
			},
		},
		{
			Tier:      model.PlanTierPremium,
			Name:      "Premium",
			PriceFrom: 89,
			Features: []string{
				"Lustrage carrosserie",
				"Rénovation plastiques extérieurs",
				"Nettoyage intérieur approfondi",
				"Protection hydrophobe express",
			},
			Highlight: true,
		},
		{
			Tier:      model.PlanTierDeluxe,
			Name:      "Deluxe",
			PriceFrom: 149,
			Features: []string{
				"Polissage complet 2 phases",
				"Cire céramique de protection",
				"Rénovation jantes et sièges",
				"Finition professionnelle intérieure / extérieure",
			},
		},
	}
}

func Contact() model.ContactInfo {
	return model.ContactInfo{
		Phone:       "06 11 22 33 44",
		PhoneHref:   "tel:+33611223344",
		WhatsApp:    "https://wa.me/33611223344",
		Email:       "sparkcar.contact@gmail.com",
		ServiceArea: "Saint-Omer et alentours (30km)",
		Hours:       "Lundi – Samedi : 8h00 – 19h00",
		SundayNote:  "Dimanche sur rendez-vous",
	}
}
