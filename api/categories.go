package api

// defaultCategoryID is "People & Blogs".
const defaultCategoryID = "22"

// categories maps YouTube category IDs to their display names.
var categories = map[string]string{
	"1":  "Film & Animation",
	"2":  "Autos & Vehicles",
	"10": "Music",
	"15": "Pets & Animals",
	"17": "Sports",
	"18": "Short Movies",
	"19": "Travel & Events",
	"20": "Gaming",
	"21": "Videoblogging",
	"22": "People & Blogs",
	"23": "Comedy",
	"24": "Entertainment",
	"25": "News & Politics",
	"26": "Howto & Style",
	"27": "Education",
	"28": "Science & Technology",
	"29": "Nonprofits & Activism",
	"42": "Shorts",
}

// normalizeCategory accepts either a category ID or a category name and
// returns the ID. Unknown or empty values fall back to the default category
// rather than failing the request.
func normalizeCategory(cat string) string {
	if cat == "" {
		return defaultCategoryID
	}
	for id, name := range categories {
		if id == cat || name == cat {
			return id
		}
	}
	return defaultCategoryID
}
