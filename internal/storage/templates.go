package storage

import "eventManager/internal/models"

// DefaultTemplates is the catalog seeded into event_templates on startup.
var DefaultTemplates = []models.EventTemplate{
	{Title: "Elegant Wedding", Description: "Royal indoor wedding theme with flower arches.", Price: 25000, Image: "/images/wedding1.jpg", Details: "Includes floral archways, red carpet, golden chairs, lighting setup, and mandap."},
	{Title: "Traditional Wedding", Description: "Classic South Indian wedding setup with banana leaves.", Price: 30000, Image: "/images/wedding2.jpg", Details: "Banana leaves, mandap, garlands, thoranams, and classical music."},
	{Title: "Kids Birthday Party", Description: "Colorful setup with cartoon balloons and cake table.", Price: 8000, Image: "/images/birthday1.jpg", Details: "Stage setup, cartoon cutouts, balloons, and cake table."},
	{Title: "Adult Birthday Bash", Description: "Elegant evening decor for adult birthdays.", Price: 10000, Image: "/images/birthday2.jpg", Details: "Neon lights, cake corner, music setup, and lounge decor."},
	{Title: "Corporate Event", Description: "Professional decor for business meetings or launches.", Price: 20000, Image: "/images/corporate1.jpg", Details: "Podium, projector, banners, and branded backdrop."},
	{Title: "Business Gala", Description: "Formal setup for corporate galas and awards.", Price: 22000, Image: "/images/corporate2.jpg", Details: "Stage, lighting, mic setup, guest seating arrangement."},
	{Title: "Festival Celebration", Description: "Traditional decor with lights and flowers for festivals.", Price: 15000, Image: "/images/festival1.jpg", Details: "Diya decoration, torans, pooja area, and music setup."},
	{Title: "Cultural Festival", Description: "Colorful decor for cultural events and shows.", Price: 17000, Image: "/images/festival2.jpg", Details: "Stage setup, cultural props, backdrop and lighting."},
	{Title: "Silver Anniversary", Description: "Romantic silver jubilee celebration decor.", Price: 18000, Image: "/images/anniversary1.jpg", Details: "Silver theme, roses, anniversary couple stage, cake decor."},
	{Title: "Golden Anniversary", Description: "Golden jubilee decor with luxurious elements.", Price: 20000, Image: "/images/anniversary2.jpg", Details: "Golden chairs, floral frame, lighting, and dinner setup."},
	{Title: "Baby Shower Theme", Description: "Pink and blue decor with cute baby elements.", Price: 13000, Image: "/images/babyshower1.jpg", Details: "Cradle decor, balloons, photo booth and cake table."},
	{Title: "Modern Baby Shower", Description: "Trendy modern decor for baby showers.", Price: 14000, Image: "/images/babyshower2.jpg", Details: "Neutral theme, props, modern lighting and cake corner."},
	{Title: "Engagement Ceremony", Description: "Floral and ring-themed decor for engagements.", Price: 20000, Image: "/images/engagement1.jpg", Details: "Ring stage setup, flowers, lights, and guest seating."},
	{Title: "Rustic Engagement", Description: "Vintage style engagement decor.", Price: 21000, Image: "/images/engagement2.jpg", Details: "Wooden props, rustic lighting, flower jars, ring table."},
	{Title: "Graduation Party", Description: "Joyful decor for graduates and friends.", Price: 12000, Image: "/images/graduation1.jpg", Details: "Stage with caps & scrolls theme, balloons, lighting."},
	{Title: "College Farewell", Description: "Emotional yet classy farewell party decor.", Price: 15000, Image: "/images/graduation2.jpg", Details: "Farewell board, message wall, photo area and lights."},
	{Title: "Mehndi Ceremony", Description: "Green-themed mehndi decor with floral curtains.", Price: 16000, Image: "/images/mehendi1.jpg", Details: "Floral backdrop, seating for bride, henna corner."},
	{Title: "Colorful Mehndi", Description: "Vibrant cushions and mehndi party lighting.", Price: 17000, Image: "/images/mehendi2.jpg", Details: "Bright cloth backdrop, LED lights, dhol and cushions."},
	{Title: "Cocktail Party", Description: "Stylish cocktail setup with lighting & drinks.", Price: 18000, Image: "/images/cocktail1.jpg", Details: "Bar counter, lounge seating, neon lights, and DJ."},
	{Title: "Night Cocktail Event", Description: "Elegant evening cocktail with black & gold theme.", Price: 19000, Image: "/images/cocktail2.jpg", Details: "String lights, gold props, classy seating and music."},
	{Title: "College Reunion", Description: "Friendly and youthful reunion setup.", Price: 10000, Image: "/images/reunion1.jpg", Details: "Photo booth, memory wall, stage and mics."},
	{Title: "Family Reunion", Description: "Warm and welcoming family get-together decor.", Price: 11000, Image: "/images/reunion2.jpg", Details: "Dining decor, entry welcome board, balloons."},
	{Title: "Bridal Shower", Description: "Classy bridal shower with florals and gifts.", Price: 15000, Image: "/images/bridal1.jpg", Details: "Bride-to-be backdrop, games area, chair decor."},
	{Title: "Vintage Bridal", Description: "Retro theme bridal shower decoration.", Price: 16000, Image: "/images/bridal2.jpg", Details: "Vintage frames, lace props, candles, and flowers."},
	{Title: "Charity Gala", Description: "Elegant decor for NGO/charity gala dinners.", Price: 25000, Image: "/images/gala.jpg", Details: "Table setup, sponsor logos, red carpet and stage."},
}
