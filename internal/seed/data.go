package seed

import (
	"github.com/angelmondragon/bachelorhub-backend/internal/housing"
	"github.com/angelmondragon/bachelorhub-backend/internal/maids"
	"github.com/angelmondragon/bachelorhub-backend/internal/shops"
)

func ptr[T any](v T) *T { return &v }

func list(values ...string) *[]string { return &values }

// Sample is the built-in demo catalogue loaded by cmd/seed.
func Sample() Dataset {
	return Dataset{
		Housing: []housing.Input{
			{
				Title:       ptr("Cozy Studio Apartment in Downtown"),
				Description: ptr("Perfect for students and young professionals. Fully furnished studio with modern amenities, close to universities and metro station."),
				Rent:        ptr(1200.0),
				Location:    ptr("Downtown District, New York"),
				Contact:     ptr("+1-555-0123"),
				Type:        ptr("studio"),
				Bedrooms:    ptr(0),
				Bathrooms:   ptr(1),
				Area:        ptr(450.0),
				Amenities:   list("WiFi", "Air Conditioning", "Laundry", "Security"),
				IsAvailable: ptr(true),
				Images:      list("https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg"),
			},
			{
				Title:       ptr("Shared Room in Modern Apartment"),
				Description: ptr("Spacious shared accommodation with 2 bedrooms, ideal for students. Great location with easy access to public transport."),
				Rent:        ptr(800.0),
				Location:    ptr("University Area, Boston"),
				Contact:     ptr("+1-555-0456"),
				Type:        ptr("shared"),
				Bedrooms:    ptr(2),
				Bathrooms:   ptr(1),
				Area:        ptr(850.0),
				Amenities:   list("WiFi", "Kitchen", "Study Area", "Parking"),
				IsAvailable: ptr(true),
				Images:      list("https://images.pexels.com/photos/1571463/pexels-photo-1571463.jpeg"),
			},
			{
				Title:       ptr("Affordable Single Room"),
				Description: ptr("Budget-friendly single room in a shared house. Perfect for students on a tight budget. All utilities included."),
				Rent:        ptr(600.0),
				Location:    ptr("Suburb Area, Chicago"),
				Contact:     ptr("+1-555-0789"),
				Type:        ptr("room"),
				Bedrooms:    ptr(1),
				Bathrooms:   ptr(1),
				Area:        ptr(200.0),
				Amenities:   list("WiFi", "Shared Kitchen", "Utilities Included"),
				IsAvailable: ptr(true),
				Images:      list("https://images.pexels.com/photos/1571468/pexels-photo-1571468.jpeg"),
			},
		},
		Shops: []shops.Input{
			{
				ShopName:    ptr("Fresh Market Grocery"),
				Type:        ptr("grocery"),
				Description: ptr("Your one-stop shop for fresh produce, groceries, and daily essentials. Open 7 days a week."),
				Location:    ptr("Main Street, Downtown"),
				Contact:     ptr("+1-555-1001"),
				Email:       ptr("info@freshmarket.com"),
				Hours:       ptr("7:00 AM - 10:00 PM"),
				Services:    list("Fresh Produce", "Bakery", "Deli", "Home Delivery"),
				Rating:      ptr(4.5),
				ReviewCount: ptr(128),
				IsActive:    ptr(true),
			},
			{
				ShopName:    ptr("Campus Cafe & Bistro"),
				Type:        ptr("restaurant"),
				Description: ptr("Student-friendly cafe serving coffee, sandwiches, and quick meals. Perfect study spot with free WiFi."),
				Location:    ptr("University Campus"),
				Contact:     ptr("+1-555-1002"),
				Email:       ptr("hello@campuscafe.com"),
				Website:     ptr("https://campuscafe.com"),
				Hours:       ptr("6:00 AM - 11:00 PM"),
				Services:    list("Coffee", "Light Meals", "Free WiFi", "Study Space"),
				Rating:      ptr(4.2),
				ReviewCount: ptr(85),
				IsActive:    ptr(true),
			},
			{
				ShopName:    ptr("Quick Pharmacy Plus"),
				Type:        ptr("pharmacy"),
				Description: ptr("Full-service pharmacy with prescription medications, health products, and medical supplies."),
				Location:    ptr("Health District"),
				Contact:     ptr("+1-555-1003"),
				Email:       ptr("care@quickpharmacy.com"),
				Hours:       ptr("8:00 AM - 9:00 PM"),
				Services:    list("Prescriptions", "Health Checkups", "First Aid", "Consultation"),
				Rating:      ptr(4.7),
				ReviewCount: ptr(96),
				IsActive:    ptr(true),
			},
			{
				ShopName:    ptr("Tech Hub Electronics"),
				Type:        ptr("electronics"),
				Description: ptr("Latest electronics, gadgets, and computer accessories. Student discounts available."),
				Location:    ptr("Shopping Center"),
				Contact:     ptr("+1-555-1004"),
				Email:       ptr("sales@techhub.com"),
				Website:     ptr("https://techhub.com"),
				Hours:       ptr("10:00 AM - 8:00 PM"),
				Services:    list("Electronics", "Repairs", "Student Discounts", "Warranties"),
				Rating:      ptr(4.3),
				ReviewCount: ptr(67),
				IsActive:    ptr(true),
			},
		},
		Maids: []maids.Input{
			{
				Name:         ptr("Maria Rodriguez"),
				Age:          ptr(32),
				Experience:   ptr(8),
				Description:  ptr("Experienced and reliable housekeeper with excellent references. Specializes in deep cleaning and organization."),
				Contact:      ptr("+1-555-2001"),
				Email:        ptr("maria.cleaning@email.com"),
				Availability: ptr("full-time"),
				WorkingHours: ptr("8:00 AM - 5:00 PM"),
				Services:     list("house-cleaning", "kitchen-cleaning", "bathroom-cleaning", "laundry", "ironing"),
				Rate:         ptr(25.0),
				RateType:     ptr("hourly"),
				Location:     ptr("Downtown Area"),
				Languages:    list("English", "Spanish"),
				Rating:       ptr(4.9),
				ReviewCount:  ptr(45),
				IsAvailable:  ptr(true),
				IsVerified:   ptr(true),
			},
			{
				Name:         ptr("Sarah Johnson"),
				Age:          ptr(28),
				Experience:   ptr(5),
				Description:  ptr("Detail-oriented cleaner with a passion for creating spotless living spaces. Available for regular or one-time cleanings."),
				Contact:      ptr("+1-555-2002"),
				Email:        ptr("sarah.clean@email.com"),
				Availability: ptr("part-time"),
				WorkingHours: ptr("Flexible - Weekdays"),
				Services:     list("house-cleaning", "dusting", "mopping", "vacuuming", "window-cleaning"),
				Rate:         ptr(22.0),
				RateType:     ptr("hourly"),
				Location:     ptr("University District"),
				Languages:    list("English"),
				Rating:       ptr(4.7),
				ReviewCount:  ptr(32),
				IsAvailable:  ptr(true),
				IsVerified:   ptr(true),
			},
			{
				Name:         ptr("Emily Chen"),
				Age:          ptr(35),
				Experience:   ptr(12),
				Description:  ptr("Professional cleaning service with over a decade of experience. Trusted by families and professionals alike."),
				Contact:      ptr("+1-555-2003"),
				Email:        ptr("emily.cleaning@email.com"),
				Availability: ptr("flexible"),
				WorkingHours: ptr("7 days a week"),
				Services:     list("deep-cleaning", "cooking", "dishwashing", "laundry", "house-cleaning"),
				Rate:         ptr(30.0),
				RateType:     ptr("hourly"),
				Location:     ptr("Suburb Area"),
				Languages:    list("English", "Mandarin"),
				Rating:       ptr(4.8),
				ReviewCount:  ptr(78),
				IsAvailable:  ptr(true),
				IsVerified:   ptr(true),
			},
			{
				Name:         ptr("Jennifer Williams"),
				Age:          ptr(26),
				Experience:   ptr(3),
				Description:  ptr("Young and energetic cleaner offering affordable rates for students and young professionals."),
				Contact:      ptr("+1-555-2004"),
				Email:        ptr("jen.cleaning@email.com"),
				Availability: ptr("weekends"),
				WorkingHours: ptr("Saturday - Sunday"),
				Services:     list("house-cleaning", "kitchen-cleaning", "bathroom-cleaning", "dusting"),
				Rate:         ptr(18.0),
				RateType:     ptr("hourly"),
				Location:     ptr("Campus Area"),
				Languages:    list("English"),
				Rating:       ptr(4.4),
				ReviewCount:  ptr(23),
				IsAvailable:  ptr(true),
				IsVerified:   ptr(false),
			},
		},
	}
}
