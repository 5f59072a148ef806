package seed

import (
	"time"

	"github.com/kashoe/chessclub-api/internal/domain/event"
	"github.com/kashoe/chessclub-api/internal/domain/product"
	"github.com/kashoe/chessclub-api/internal/pkg/isotime"
)

const day = 24 * time.Hour

func ptr[T any](v T) *T { return &v }

func Products() []product.CreateInput {
	return []product.CreateInput{
		{
			Name:        "Professional Chess Board",
			Description: "High-quality wooden chess board with 2-inch squares, perfect for tournament play",
			Category:    product.CategoryChessBoard,
			Price:       ptr(3500.0),
			ImageURL:    ptr("https://images.unsplash.com/photo-1763635031729-b3db264dd8c0"),
			Stock:       15,
		},
		{
			Name:        "Digital Chess Clock",
			Description: "Tournament-grade digital chess clock with delay and increment modes",
			Category:    product.CategoryChessClock,
			Price:       ptr(2800.0),
			ImageURL:    ptr("https://images.pexels.com/photos/5477779/pexels-photo-5477779.jpeg"),
			Stock:       10,
		},
		{
			Name:        "Kashoe Chess Club T-Shirt",
			Description: "Official club t-shirt with vibrant colors (Available in kids sizes)",
			Category:    product.CategoryMerchandise,
			Price:       ptr(800.0),
			ImageURL:    ptr("https://images.unsplash.com/photo-1745556377753-9efffe9181ef"),
			Stock:       50,
		},
		{
			Name:        "Beginner Chess Set",
			Description: "Colorful chess set with large pieces, perfect for young learners",
			Category:    product.CategoryChessBoard,
			Price:       ptr(1500.0),
			ImageURL:    ptr("https://images.pexels.com/photos/7104222/pexels-photo-7104222.jpeg"),
			Stock:       25,
		},
		{
			Name:        "Chess Strategy Book Bundle",
			Description: "Collection of 3 beginner-friendly chess strategy books",
			Category:    product.CategoryMerchandise,
			Price:       ptr(1200.0),
			ImageURL:    ptr("https://images.unsplash.com/photo-1745556377790-b1694d9aed26"),
			Stock:       20,
		},
		{
			Name:        "Monthly Lesson Package (4 Sessions)",
			Description: "Four 1-hour chess lessons with expert coaches. Perfect for consistent learning!",
			Category:    product.CategoryLessonPackage,
			Price:       ptr(4000.0),
			Stock:       100,
		},
		{
			Name:        "Private Coaching (10 Sessions)",
			Description: "One-on-one personalized chess coaching for rapid improvement",
			Category:    product.CategoryLessonPackage,
			Price:       ptr(12000.0),
			Stock:       20,
		},
		{
			Name:        "Kashoe Chess Club Cap",
			Description: "Stylish cap with club logo, one size fits all",
			Category:    product.CategoryMerchandise,
			Price:       ptr(500.0),
			Stock:       40,
		},
		{
			Name:        "Travel Chess Set",
			Description: "Portable magnetic chess set, perfect for chess on the go",
			Category:    product.CategoryChessBoard,
			Price:       ptr(1800.0),
			Stock:       30,
		},
		{
			Name:        "Analog Chess Clock",
			Description: "Classic mechanical chess clock for traditional gameplay",
			Category:    product.CategoryChessClock,
			Price:       ptr(3200.0),
			Stock:       8,
		},
	}
}

// Events schedules the sample events relative to now.
func Events(now time.Time) []event.CreateInput {
	at := func(days int) *isotime.Time {
		return &isotime.Time{Time: now.Add(time.Duration(days) * day)}
	}
	return []event.CreateInput{
		{
			Title:           "Beginner's Chess Tournament",
			Description:     "Fun tournament for kids aged 6-10. Prizes for top 3 players! Registration includes snacks and certificate.",
			EventDate:       at(14),
			Location:        "Kashoe Chess Club, Nairobi",
			ImageURL:        ptr("https://images.unsplash.com/photo-1745556377753-9efffe9181ef"),
			MaxParticipants: ptr(30),
		},
		{
			Title:           "Chess Strategy Workshop",
			Description:     "Learn advanced opening strategies and middle-game tactics from our expert coaches",
			EventDate:       at(7),
			Location:        "Kashoe Chess Club, Nairobi",
			ImageURL:        ptr("https://images.pexels.com/photos/7104222/pexels-photo-7104222.jpeg"),
			MaxParticipants: ptr(20),
		},
		{
			Title:           "Inter-School Chess Championship",
			Description:     "Annual championship featuring top young players from schools across Nairobi",
			EventDate:       at(30),
			Location:        "Nairobi Community Center",
			ImageURL:        ptr("https://images.unsplash.com/photo-1763635031729-b3db264dd8c0"),
			MaxParticipants: ptr(50),
		},
		{
			Title:           "Family Chess Day",
			Description:     "Bring the whole family for a day of chess fun! Activities for all ages and skill levels",
			EventDate:       at(21),
			Location:        "Kashoe Chess Club, Nairobi",
			ImageURL:        ptr("https://images.pexels.com/photos/5477779/pexels-photo-5477779.jpeg"),
			MaxParticipants: ptr(40),
		},
	}
}
