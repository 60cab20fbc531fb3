package config

import (
	"log"

	"halo-lounge-backend/models"
)

// SeedDB loads the reference catalog and demo accounts. Safe to run on
// every boot: existing rows are left alone.
func SeedDB() {
	seedUsers()
	seedServices()
	seedProducts()
}

func seedUsers() {
	users := []models.User{
		{
			Email:    "admin@halohairlounge.com",
			Name:     "Admin User",
			Password: "admin123",
			Role:     models.RoleAdmin,
			Phone:    "+1234567890",
			IsActive: true,
		},
		{
			Email:    "customer@example.com",
			Name:     "Jane Doe",
			Password: "customer123",
			Role:     models.RoleUser,
			Phone:    "+1234567891",
			IsActive: true,
		},
	}

	for _, user := range users {
		var count int64
		DB.Model(&models.User{}).Where("email = ?", user.Email).Count(&count)
		if count > 0 {
			continue
		}
		if err := DB.Create(&user).Error; err != nil {
			log.Printf("Failed to seed user %s: %v", user.Email, err)
		}
	}
}

func seedServices() {
	services := []models.Service{
		{
			ID:          "classic-haircut",
			Name:        "Classic Haircut",
			Description: "Professional haircut with styling consultation. Includes wash and blow dry.",
			PriceCents:  6500,
			Duration:    60,
			Category:    models.CategoryHaircut,
			Image:       "https://images.unsplash.com/photo-1562322140-8baeececf3df?w=800",
		},
		{
			ID:          "premium-color-treatment",
			Name:        "Premium Color Treatment",
			Description: "Full color service with premium products. Includes toner and deep conditioning.",
			PriceCents:  18000,
			Duration:    180,
			Category:    models.CategoryColoring,
			Image:       "https://images.unsplash.com/photo-1560066984-138dadb4c035?w=800",
		},
		{
			ID:          "balayage-highlights",
			Name:        "Balayage Highlights",
			Description: "Hand-painted highlights for a natural, sun-kissed look.",
			PriceCents:  22000,
			Duration:    210,
			Category:    models.CategoryColoring,
			Image:       "https://images.unsplash.com/photo-1522337660859-02fbefca4702?w=800",
		},
		{
			ID:          "deep-conditioning-treatment",
			Name:        "Deep Conditioning Treatment",
			Description: "Intensive moisture therapy for damaged or dry hair.",
			PriceCents:  8500,
			Duration:    45,
			Category:    models.CategoryTreatment,
			Image:       "https://images.unsplash.com/photo-1519699047748-de8e457a634e?w=800",
		},
		{
			ID:          "special-event-styling",
			Name:        "Special Event Styling",
			Description: "Elegant updo or styling for weddings and special occasions.",
			PriceCents:  12000,
			Duration:    90,
			Category:    models.CategoryStyling,
			Image:       "https://images.unsplash.com/photo-1487412912498-0447578fcca8?w=800",
		},
		{
			ID:          "hair-extensions-installation",
			Name:        "Hair Extensions Installation",
			Description: "Premium quality hair extensions with professional installation.",
			PriceCents:  45000,
			Duration:    240,
			Category:    models.CategoryExtensions,
			Image:       "https://images.unsplash.com/photo-1522338140262-f46f5913618a?w=800",
		},
		{
			ID:          "box-braids",
			Name:        "Box Braids",
			Description: "Protective styling with premium synthetic or human hair.",
			PriceCents:  20000,
			Duration:    300,
			Category:    models.CategoryBraiding,
			Image:       "https://images.unsplash.com/photo-1605980676233-e14c31c797b3?w=800",
		},
		{
			ID:          "keratin-treatment",
			Name:        "Keratin Treatment",
			Description: "Smoothing treatment that eliminates frizz and adds shine.",
			PriceCents:  30000,
			Duration:    180,
			Category:    models.CategoryTreatment,
			Image:       "https://images.unsplash.com/photo-1521590832167-7bcbfaa6381f?w=800",
		},
	}

	for _, service := range services {
		service.IsActive = true
		var count int64
		DB.Model(&models.Service{}).Where("id = ?", service.ID).Count(&count)
		if count > 0 {
			continue
		}
		if err := DB.Create(&service).Error; err != nil {
			log.Printf("Failed to seed service %s: %v", service.ID, err)
		}
	}
}

func seedProducts() {
	var count int64
	DB.Model(&models.Product{}).Count(&count)
	if count > 0 {
		return
	}

	products := []models.Product{
		{
			Name:                "Hydrating Shampoo",
			Description:         "Gentle cleansing shampoo infused with argan oil and vitamin E. Perfect for all hair types, this luxurious formula restores moisture and adds brilliant shine.",
			PriceCents:          3200,
			CompareAtPriceCents: 4000,
			Images:              models.StringList{"https://images.unsplash.com/photo-1571875257727-256c39da42af?w=800"},
			Category:            models.ProductShampoo,
			Brand:               "Halo Signature",
			Stock:               50,
			IsFeatured:          true,
			Tags:                models.StringList{"hydrating", "sulfate-free", "best-seller"},
		},
		{
			Name:                "Repair Conditioner",
			Description:         "Intensive repair conditioner with keratin and collagen. Rebuilds damaged hair from within.",
			PriceCents:          3500,
			CompareAtPriceCents: 4500,
			Images:              models.StringList{"https://images.unsplash.com/photo-1556228720-195a672e8a03?w=800"},
			Category:            models.ProductConditioner,
			Brand:               "Halo Signature",
			Stock:               45,
			IsFeatured:          true,
			Tags:                models.StringList{"repair", "keratin", "damaged-hair"},
		},
		{
			Name:        "Color Protection Shampoo",
			Description: "UV-protecting shampoo that locks in color and prevents fading.",
			PriceCents:  3400,
			Images:      models.StringList{"https://images.unsplash.com/photo-1535585209827-a15fcdbc4c2d?w=800"},
			Category:    models.ProductShampoo,
			Brand:       "Halo Pro",
			Stock:       30,
			Tags:        models.StringList{"color-safe", "uv-protection"},
		},
		{
			Name:                "Hair Growth Serum",
			Description:         "Advanced formula with biotin and natural botanicals to stimulate hair growth.",
			PriceCents:          5800,
			CompareAtPriceCents: 7200,
			Images:              models.StringList{"https://images.unsplash.com/photo-1608248543803-ba4f8c70ae0b?w=800"},
			Category:            models.ProductTreatment,
			Brand:               "Halo Labs",
			Stock:               25,
			IsFeatured:          true,
			Tags:                models.StringList{"growth", "biotin", "serum"},
		},
		{
			Name:        "Volumizing Mousse",
			Description: "Lightweight mousse that adds body and hold without stiffness.",
			PriceCents:  2800,
			Images:      models.StringList{"https://images.unsplash.com/photo-1629198688000-71f23e745b6e?w=800"},
			Category:    models.ProductStyling,
			Brand:       "Halo Style",
			Stock:       40,
			Tags:        models.StringList{"volume", "mousse", "hold"},
		},
		{
			Name:        "Heat Protection Spray",
			Description: "Thermal protection up to 450°F. Shields hair from heat damage.",
			PriceCents:  2600,
			Images:      models.StringList{"https://images.unsplash.com/photo-1620967098601-c44db8f51667?w=800"},
			Category:    models.ProductStyling,
			Brand:       "Halo Style",
			Stock:       55,
			IsFeatured:  true,
			Tags:        models.StringList{"heat-protection", "spray"},
		},
		{
			Name:        "Argan Oil Hair Mask",
			Description: "Intensive weekly treatment with pure Moroccan argan oil.",
			PriceCents:  4200,
			Images:      models.StringList{"https://images.unsplash.com/photo-1570554886111-e80fcca6a029?w=800"},
			Category:    models.ProductTreatment,
			Brand:       "Halo Signature",
			Stock:       35,
			IsFeatured:  true,
			Tags:        models.StringList{"argan-oil", "mask", "weekly-treatment"},
		},
		{
			Name:                "Professional Blow Dryer",
			Description:         "Ionic technology blow dryer with 3 heat settings and cool shot.",
			PriceCents:          14500,
			CompareAtPriceCents: 20000,
			Images:              models.StringList{"https://images.unsplash.com/photo-1522338242992-e1a54906a8da?w=800"},
			Category:            models.ProductTools,
			Brand:               "Halo Pro",
			Stock:               15,
			IsFeatured:          true,
			Tags:                models.StringList{"blow-dryer", "ionic", "professional"},
		},
		{
			Name:        "Ceramic Flat Iron",
			Description: "Professional-grade flat iron with adjustable temperature control.",
			PriceCents:  12000,
			Images:      models.StringList{"https://images.unsplash.com/photo-1519699047748-de8e457a634e?w=800"},
			Category:    models.ProductTools,
			Brand:       "Halo Pro",
			Stock:       20,
			Tags:        models.StringList{"flat-iron", "ceramic", "straightener"},
		},
		{
			Name:        "Silk Scrunchie Set",
			Description: "Set of 5 pure silk scrunchies. Gentle on hair, prevents breakage.",
			PriceCents:  2400,
			Images:      models.StringList{"https://images.unsplash.com/photo-1535083783855-76ae62b2914e?w=800"},
			Category:    models.ProductAccessories,
			Brand:       "Halo Essentials",
			Stock:       60,
			Tags:        models.StringList{"scrunchies", "silk", "accessories"},
		},
		{
			Name:        "Semi-Permanent Hair Color - Rose Gold",
			Description: "Vibrant semi-permanent color that lasts 4-6 weeks.",
			PriceCents:  1800,
			Images:      models.StringList{"https://images.unsplash.com/photo-1522337360788-8b13dee7a37e?w=800"},
			Category:    models.ProductColoring,
			Brand:       "Halo Color",
			Stock:       30,
			Tags:        models.StringList{"color", "semi-permanent", "rose-gold"},
		},
		{
			Name:        "Purple Toning Shampoo",
			Description: "Neutralizes brassy tones in blonde and silver hair.",
			PriceCents:  3000,
			Images:      models.StringList{"https://images.unsplash.com/photo-1526045478516-99145907023c?w=800"},
			Category:    models.ProductShampoo,
			Brand:       "Halo Pro",
			Stock:       40,
			Tags:        models.StringList{"toning", "purple", "blonde-care"},
		},
	}

	for _, product := range products {
		if err := DB.Create(&product).Error; err != nil {
			log.Printf("Failed to seed product %s: %v", product.Name, err)
		}
	}
}
