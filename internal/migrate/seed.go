package migrate

import (
	"log"

	"github.com/jmoiron/sqlx"
)

type seedDistrict struct {
	Name      string
	NameHindi string
	Code      string
	Latitude  float64
	Longitude float64
}

// Uttar Pradesh reference set. Coordinates are district headquarters,
// sufficient for nearest-district resolution at this granularity.
var seedDistricts = []seedDistrict{
	{"Agra", "आगरा", "UP-AGR", 27.1767, 78.0081},
	{"Ayodhya", "अयोध्या", "UP-AYO", 26.7922, 82.1998},
	{"Bareilly", "बरेली", "UP-BAR", 28.3670, 79.4304},
	{"Ghaziabad", "गाज़ियाबाद", "UP-GHA", 28.6692, 77.4538},
	{"Gorakhpur", "गोरखपुर", "UP-GOR", 26.7606, 83.3732},
	{"Jhansi", "झांसी", "UP-JHA", 25.4484, 78.5685},
	{"Kanpur Nagar", "कानपुर नगर", "UP-KAN", 26.4499, 80.3319},
	{"Lucknow", "लखनऊ", "UP-LKO", 26.8467, 80.9462},
	{"Meerut", "मेरठ", "UP-MEE", 28.9845, 77.7064},
	{"Mirzapur", "मिर्ज़ापुर", "UP-MIR", 25.1460, 82.5690},
	{"Moradabad", "मुरादाबाद", "UP-MOR", 28.8386, 78.7733},
	{"Prayagraj", "प्रयागराज", "UP-PRA", 25.4358, 81.8463},
	{"Saharanpur", "सहारनपुर", "UP-SAH", 29.9680, 77.5552},
	{"Varanasi", "वाराणसी", "UP-VAR", 25.3176, 82.9739},
}

// SeedDistricts inserts the district reference set. Existing rows are left
// untouched (ON CONFLICT DO NOTHING on the unique code), so re-running a
// deployment never mutates catalog data.
func SeedDistricts(db *sqlx.DB) error {
	inserted := 0
	for _, d := range seedDistricts {
		res, err := db.Exec(`
            INSERT INTO districts (name, name_hindi, code, latitude, longitude)
            VALUES ($1, $2, $3, $4, $5)
            ON CONFLICT (code) DO NOTHING
        `, d.Name, d.NameHindi, d.Code, d.Latitude, d.Longitude)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}
	if inserted > 0 {
		log.Printf("Seeded %d districts", inserted)
	}
	return nil
}
