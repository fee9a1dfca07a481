package seed

import "github.com/shopspring/decimal"

const currency = "SAR"

type gameSeed struct {
	name, nameAr               string
	description, descriptionAr string
	image                      string
	category                   string
}

// productSeed points at its game by position in games.
type productSeed struct {
	game                         int
	name, nameAr                 string
	price                        int64
	deliveryTime, deliveryTimeAr string
	popular                      bool
}

var games = []gameSeed{
	{"PUBG Mobile", "ببجي موبايل", "Battle Royale Mobile Game", "لعبة باتل رويال للجوال",
		"https://images.unsplash.com/photo-1542751371-adc38448a05e?w=400", "mobile"},
	{"Free Fire", "فري فاير", "Battle Royale Mobile Game", "لعبة باتل رويال للجوال",
		"https://images.unsplash.com/photo-1511512578047-dfb367046420?w=400", "mobile"},
	{"Fortnite", "فورتنايت", "Battle Royale Game", "لعبة باتل رويال",
		"https://images.unsplash.com/photo-1538481199705-c710c4e965fc?w=400", "pc"},
	{"Valorant", "فالورانت", "Tactical FPS Game", "لعبة إطلاق نار تكتيكية",
		"https://images.unsplash.com/photo-1552820728-8b83bb6b773f?w=400", "pc"},
	{"FIFA 24", "فيفا 24", "Football Simulation Game", "لعبة محاكاة كرة القدم",
		"https://images.unsplash.com/photo-1574629810360-7efbbe195018?w=400", "console"},
	{"Call of Duty", "كول أوف ديوتي", "First Person Shooter", "لعبة إطلاق نار من منظور الشخص الأول",
		"https://images.unsplash.com/photo-1493711662062-fa541adb3fc8?w=400", "console"},
}

var products = []productSeed{
	{0, "60 UC", "60 يو سي", 5, "5 minutes", "5 دقائق", false},
	{0, "325 UC", "325 يو سي", 25, "5 minutes", "5 دقائق", true},
	{0, "660 UC", "660 يو سي", 50, "5 minutes", "5 دقائق", true},
	{0, "1800 UC", "1800 يو سي", 125, "5 minutes", "5 دقائق", false},

	{1, "100 Diamonds", "100 ماسة", 8, "5 minutes", "5 دقائق", false},
	{1, "310 Diamonds", "310 ماسة", 22, "5 minutes", "5 دقائق", true},
	{1, "520 Diamonds", "520 ماسة", 35, "5 minutes", "5 دقائق", true},
	{1, "1080 Diamonds", "1080 ماسة", 70, "5 minutes", "5 دقائق", false},

	{2, "1000 V-Bucks", "1000 في-باكس", 40, "10 minutes", "10 دقائق", true},
	{2, "2800 V-Bucks", "2800 في-باكس", 95, "10 minutes", "10 دقائق", false},

	{3, "1000 VP", "1000 نقطة فالورانت", 45, "15 minutes", "15 دقيقة", true},
	{3, "2400 VP", "2400 نقطة فالورانت", 100, "15 minutes", "15 دقيقة", false},

	{4, "1000 FIFA Points", "1000 نقطة فيفا", 50, "20 minutes", "20 دقيقة", true},
	{4, "2200 FIFA Points", "2200 نقطة فيفا", 100, "20 minutes", "20 دقيقة", false},

	{5, "1000 COD Points", "1000 نقطة كود", 45, "15 minutes", "15 دقيقة", true},
	{5, "2400 COD Points", "2400 نقطة كود", 95, "15 minutes", "15 دقيقة", false},
}

func (p productSeed) amount() decimal.Decimal {
	return decimal.NewFromInt(p.price)
}
