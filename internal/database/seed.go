package database

import (
	"time"

	"fortiercars/internal/domain"
)

func strPtr(s string) *string { return &s }

// seedTestimonials returns the approved reviews shown on a fresh install.
func seedTestimonials() []domain.Testimonial {
	now := time.Now().UTC()
	items := []domain.Testimonial{
		{
			ID:           "test-1",
			Name:         "Sarah L.",
			Email:        "sarah.l@example.com",
			ImageURL:     strPtr("https://images.unsplash.com/photo-1494790108755-2616b152c5d6?w=200&h=200&fit=crop&crop=face"),
			Rating:       5,
			Quote:        "Working with Ben was a game-changer. He listened to my needs and found the exact car I wanted without any pressure. Highly recommend!",
			CarPurchased: strPtr("2024 BMW X5"),
		},
		{
			ID:           "test-2",
			Name:         "Mark T.",
			Email:        "mark.t@example.com",
			ImageURL:     strPtr("https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200&h=200&fit=crop&crop=face"),
			Rating:       5,
			Quote:        "The process was incredibly smooth from start to finish. Ben is knowledgeable, professional, and genuinely cares about his customers.",
			CarPurchased: strPtr("2023 Mercedes C-Class"),
		},
		{
			ID:           "test-3",
			Name:         "Jessica R.",
			Email:        "jessica.r@example.com",
			ImageURL:     strPtr("https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200&h=200&fit=crop&crop=face"),
			Rating:       5,
			Quote:        "I've bought several cars over the years, and this was by far the best experience. Transparent pricing and excellent follow-up.",
			CarPurchased: strPtr("2024 Audi Q7"),
		},
		{
			ID:           "test-4",
			Name:         "David M.",
			Email:        "david.m@example.com",
			ImageURL:     strPtr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&h=200&fit=crop&crop=face"),
			Rating:       5,
			Quote:        "Ben made car buying stress-free. His expertise and honest approach helped me make the right decision with confidence.",
			CarPurchased: strPtr("2024 Porsche 911"),
		},
		{
			ID:           "test-5",
			Name:         "Lisa K.",
			Email:        "lisa.k@example.com",
			ImageURL:     strPtr("https://images.unsplash.com/photo-1489424731084-a5d8b219a5bb?w=200&h=200&fit=crop&crop=face"),
			Rating:       5,
			Quote:        "Exceptional service from start to finish. Ben went above and beyond to ensure I got exactly what I was looking for.",
			CarPurchased: strPtr("2023 Lexus RX"),
		},
	}
	// Stagger timestamps so the newest-first listing keeps the order above.
	for i := range items {
		at := now.Add(-time.Duration(i) * time.Second)
		items[i].IsApproved = true
		items[i].CreatedAt = at
		items[i].ApprovedAt = &at
	}
	return items
}

// seedVehicles returns four new and four used catalog entries.
func seedVehicles() []domain.Vehicle {
	now := time.Now().UTC()
	items := []domain.Vehicle{
		{
			ID:          "new-1",
			Year:        2025,
			Brand:       "Mercedes-Benz",
			Model:       "S-Class",
			Type:        "Luxury Sedan",
			Category:    domain.VehicleCategoryNew,
			ImageURL:    "https://images.unsplash.com/photo-1563720223185-11003d516935?w=600&h=400&fit=crop",
			Features:    "Cutting-edge technology, unparalleled comfort, dynamic performance",
			Price:       "Starting at $115,000",
			Description: "Experience the pinnacle of luxury with the 2025 Mercedes-Benz S-Class, featuring advanced driver assistance and premium amenities.",
			IsFeatured:  true,
		},
		{
			ID:          "new-2",
			Year:        2025,
			Brand:       "BMW",
			Model:       "iX",
			Type:        "Electric SUV",
			Category:    domain.VehicleCategoryNew,
			ImageURL:    "https://images.unsplash.com/photo-1609521263047-f8f205293f24?w=600&h=400&fit=crop",
			Features:    "Zero emissions, spacious interior, advanced safety suite",
			Price:       "Starting at $87,500",
			Description: "The future of sustainable luxury driving with the BMW iX, combining electric performance with premium comfort.",
			IsFeatured:  true,
		},
		{
			ID:          "new-3",
			Year:        2025,
			Brand:       "Porsche",
			Model:       "911 Turbo",
			Type:        "Sports Coupe",
			Category:    domain.VehicleCategoryNew,
			ImageURL:    "https://images.unsplash.com/photo-1544829099-b9a0c5303bea?w=600&h=400&fit=crop",
			Features:    "Exhilarating speed, precision handling, iconic design",
			Price:       "Starting at $174,300",
			Description: "Unleash pure performance with the legendary Porsche 911 Turbo, engineered for driving enthusiasts.",
		},
		{
			ID:          "new-4",
			Year:        2025,
			Brand:       "Audi",
			Model:       "A8",
			Type:        "Executive Sedan",
			Category:    domain.VehicleCategoryNew,
			ImageURL:    "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=600&h=400&fit=crop",
			Features:    "Advanced quattro all-wheel drive, premium materials, innovative technology",
			Price:       "Starting at $96,500",
			Description: "Sophisticated luxury meets cutting-edge innovation in the 2025 Audi A8.",
		},
		{
			ID:          "used-1",
			Year:        2022,
			Brand:       "BMW",
			Model:       "5 Series",
			Type:        "Premium Sedan",
			Category:    domain.VehicleCategoryUsed,
			ImageURL:    "https://images.unsplash.com/photo-1555215695-3004980ad54e?w=600&h=400&fit=crop",
			Mileage:     strPtr("35,000 km"),
			Features:    "One owner, full service history, luxurious interior",
			Price:       "$52,900",
			Description: "Meticulously maintained BMW 5 Series with complete service records and premium features.",
			IsFeatured:  true,
		},
		{
			ID:          "used-2",
			Year:        2021,
			Brand:       "Audi",
			Model:       "Q5",
			Type:        "Compact SUV",
			Category:    domain.VehicleCategoryUsed,
			ImageURL:    "https://images.unsplash.com/photo-1549317661-bd32c8ce0db2?w=600&h=400&fit=crop",
			Mileage:     strPtr("50,000 km"),
			Features:    "Fuel-efficient, versatile, perfect for city driving",
			Price:       "$41,500",
			Description: "Reliable and efficient Audi Q5, ideal for both urban commuting and weekend adventures.",
		},
		{
			ID:          "used-3",
			Year:        2020,
			Brand:       "Mercedes-Benz",
			Model:       "C 43 AMG",
			Type:        "Performance Sedan",
			Category:    domain.VehicleCategoryUsed,
			ImageURL:    "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?w=600&h=400&fit=crop",
			Mileage:     strPtr("28,000 km"),
			Features:    "Certified pre-owned, sport package, pristine condition",
			Price:       "$48,750",
			Description: "Certified pre-owned AMG with sport package, delivering performance and luxury in perfect harmony.",
			IsFeatured:  true,
		},
		{
			ID:          "used-4",
			Year:        2021,
			Brand:       "Lexus",
			Model:       "RX 350",
			Type:        "Luxury SUV",
			Category:    domain.VehicleCategoryUsed,
			ImageURL:    "https://images.unsplash.com/photo-1590362891991-f776e747a588?w=600&h=400&fit=crop",
			Mileage:     strPtr("42,000 km"),
			Features:    "Hybrid efficiency, premium interior, advanced safety features",
			Price:       "$45,200",
			Description: "Premium Lexus RX 350 combining luxury comfort with exceptional reliability and fuel efficiency.",
		},
	}
	for i := range items {
		at := now.Add(-time.Duration(i) * time.Second)
		items[i].IsAvailable = true
		items[i].CreatedAt = at
		items[i].UpdatedAt = at
	}
	return items
}
