package inventory

import "github.com/ProMBZ/update-car-sales-chatbot/internal/model"

// Load builds the dealership stock catalog. The stock is fixed at process
// start; keys are pre-normalized to lowercase.
func Load() *Catalog {
	return newCatalog([]entry{
		{"toyota corolla", model.Listing{
			Price:    18000,
			Mileage:  60000,
			Interior: "Leather seats, well-maintained",
			Details:  "2018 Toyota Corolla, good condition, low mileage for its age, sunroof, new tires.",
			Benefits: "Reliable, fuel-efficient, perfect for commutes.",
		}},
		{"honda vezel", model.Listing{
			Price:    22000,
			Mileage:  45000,
			Interior: "Fabric seats, minor wear",
			Details:  "2019 Honda Vezel, hybrid, well-maintained, navigation system, recent oil change.",
			Benefits: "Eco-friendly, spacious, advanced features.",
		}},
		{"ford mustang", model.Listing{
			Price:    30000,
			Mileage:  30000,
			Interior: "Premium leather, like new",
			Details:  "2020 Ford Mustang, sports edition, powerful engine, leather interior, upgraded sound system.",
			Benefits: "Performance-driven, stylish, thrilling to drive.",
		}},
		{"nissan rogue", model.Listing{
			Price:    24000,
			Mileage:  50000,
			Interior: "Clean cloth, family-friendly",
			Details:  "2020 Nissan Rogue, AWD, family-friendly, spacious cargo, backup camera.",
			Benefits: "Safe, comfortable, ideal for road trips.",
		}},
		{"chevrolet silverado", model.Listing{
			Price:    35000,
			Mileage:  70000,
			Interior: "Durable vinyl, work-ready",
			Details:  "2017 Chevrolet Silverado, truck, heavy duty, tow package, bed liner.",
			Benefits: "Powerful, durable, perfect for work or play.",
		}},
		{"mercedes-benz c-class", model.Listing{
			Price:    40000,
			Mileage:  40000,
			Interior: "Luxury leather, excellent condition",
			Details:  "2020 Mercedes-Benz C-Class, luxury sedan, premium sound, advanced safety, ambient lighting.",
			Benefits: "Luxurious, refined, top-tier performance.",
		}},
		{"bmw 3 series", model.Listing{
			Price:    38000,
			Mileage:  42000,
			Interior: "Sports leather, minimal wear",
			Details:  "2021 BMW 3 Series, sports sedan, dynamic handling, tech-packed, heads-up display.",
			Benefits: "Sporty, agile, cutting-edge technology.",
		}},
		{"audi a4", model.Listing{
			Price:    39000,
			Mileage:  41000,
			Interior: "Premium cloth, heated seats",
			Details:  "2021 Audi A4, premium sedan, quattro AWD, virtual cockpit, lane assist.",
			Benefits: "Elegant, all-weather capable, sophisticated design.",
		}},
		{"volkswagen golf", model.Listing{
			Price:    20000,
			Mileage:  55000,
			Interior: "Standard cloth, good condition",
			Details:  "2019 Volkswagen Golf, hatchback, sporty, fuel-efficient, Bluetooth connectivity.",
			Benefits: "Practical, fun to drive, economical.",
		}},
		{"hyundai tucson", model.Listing{
			Price:    23000,
			Mileage:  48000,
			Interior: "Modern cloth, touch screen",
			Details:  "2020 Hyundai Tucson, SUV, modern design, smart features, keyless entry.",
			Benefits: "Stylish, spacious, feature-rich.",
		}},
		{"kia sportage", model.Listing{
			Price:    22500,
			Mileage:  49000,
			Interior: "Comfortable cloth, rear camera",
			Details:  "2019 Kia Sportage, SUV, reliable, comfortable ride, panoramic sunroof.",
			Benefits: "Dependable, comfortable, value-packed.",
		}},
		{"subaru outback", model.Listing{
			Price:    28000,
			Mileage:  38000,
			Interior: "Durable cloth, all-weather mats",
			Details:  "2021 Subaru Outback, AWD, adventure-ready, spacious interior, roof rack.",
			Benefits: "Rugged, safe, perfect for outdoor enthusiasts.",
		}},
		{"lexus rx", model.Listing{
			Price:    45000,
			Mileage:  35000,
			Interior: "Luxury leather, ventilated seats",
			Details:  "2021 Lexus RX, smooth ride, premium features, mark levinson sound system.",
			Benefits: "Luxurious, comfortable, exceptional reliability.",
		}},
		{"tesla model 3", model.Listing{
			Price:    43000,
			Mileage:  32000,
			Interior: "Vegan leather, minimalist design",
			Details:  "2022 Tesla Model 3, electric sedan, autopilot, long range, supercharger access.",
			Benefits: "Electric, high-tech, environmentally friendly.",
		}},
		{"porsche 911", model.Listing{
			Price:    110000,
			Mileage:  20000,
			Interior: "Full leather, sport seats",
			Details:  "2020 Porsche 911, sports car, high performance, iconic design, sport chrono package.",
			Benefits: "High-performance, iconic, luxury sports car.",
		}},
		{"jeep wrangler", model.Listing{
			Price:    33000,
			Mileage:  46000,
			Interior: "Washable interior, rugged design",
			Details:  "2021 Jeep Wrangler, off-road, rugged, convertible, upgraded suspension.",
			Benefits: "Off-road capable, adventurous, iconic design.",
		}},
		{"ram 1500", model.Listing{
			Price:    37000,
			Mileage:  52000,
			Interior: "Comfortable cloth, spacious cabin",
			Details:  "2020 Ram 1500, pickup truck, powerful, comfortable interior, trailer brake controller.",
			Benefits: "Powerful, versatile, comfortable for work or play.",
		}},
		{"mini cooper", model.Listing{
			Price:    21000,
			Mileage:  58000,
			Interior: "Unique cloth, retro design",
			Details:  "2019 Mini Cooper, compact, stylish, fun to drive, panoramic glass roof.",
			Benefits: "Stylish, compact, fun and agile.",
		}},
		{"land rover defender", model.Listing{
			Price:    55000,
			Mileage:  30000,
			Interior: "Premium leather, robust interior",
			Details:  "2022 Land Rover Defender, off-road SUV, luxurious, robust, expedition package.",
			Benefits: "Luxurious",
		}},
		{"volvo xc90", model.Listing{
			Price:    50000,
			Mileage:  36000,
			Interior: "Scandinavian leather, child booster seats",
			Details:  "2021 Volvo XC90, safest features, spacious, pilot assist.",
			Benefits: "Safe, spacious, luxurious and dependable.",
		}},
	})
}
