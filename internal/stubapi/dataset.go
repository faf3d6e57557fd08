package stubapi

// Profile is a freelancer known to the stub backend.
type Profile struct {
	Slug        string
	Name        string
	Specialty   string
	Marketplace float64
	FairFound   float64
	Rating      float64
	JobsDone    float64
	OnTime      float64
	ResponseH   float64
	RehireRate  float64
}

// Dataset returns the built-in profiles.
func Dataset() []Profile {
	return []Profile{
		{Slug: "sarah-johnson", Name: "Sarah Johnson", Specialty: "Full Stack Developer", Marketplace: 98, FairFound: 91, Rating: 4.9, JobsDone: 212, OnTime: 97, ResponseH: 2, RehireRate: 88},
		{Slug: "michael-chen", Name: "Michael Chen", Specialty: "UI/UX Designer", Marketplace: 95, FairFound: 96, Rating: 4.9, JobsDone: 184, OnTime: 99, ResponseH: 1, RehireRate: 92},
		{Slug: "emily-davis", Name: "Emily Davis", Specialty: "Data Scientist", Marketplace: 92, FairFound: 94, Rating: 4.8, JobsDone: 143, OnTime: 96, ResponseH: 3, RehireRate: 90},
		{Slug: "james-wilson", Name: "James Wilson", Specialty: "Mobile Developer", Marketplace: 89, FairFound: 84, Rating: 4.7, JobsDone: 167, OnTime: 91, ResponseH: 4, RehireRate: 79},
		{Slug: "lisa-anderson", Name: "Lisa Anderson", Specialty: "DevOps Engineer", Marketplace: 87, FairFound: 88, Rating: 4.8, JobsDone: 121, OnTime: 95, ResponseH: 2, RehireRate: 85},
		{Slug: "david-brown", Name: "David Brown", Specialty: "Backend Developer", Marketplace: 85, FairFound: 79, Rating: 4.6, JobsDone: 198, OnTime: 88, ResponseH: 6, RehireRate: 72},
		{Slug: "anna-martinez", Name: "Anna Martinez", Specialty: "Frontend Developer", Marketplace: 83, FairFound: 86, Rating: 4.7, JobsDone: 96, OnTime: 94, ResponseH: 3, RehireRate: 83},
		{Slug: "robert-taylor", Name: "Robert Taylor", Specialty: "Cloud Architect", Marketplace: 81, FairFound: 82, Rating: 4.6, JobsDone: 88, OnTime: 90, ResponseH: 5, RehireRate: 77},
		{Slug: "priya-patel", Name: "Priya Patel", Specialty: "Data Scientist", Marketplace: 80, FairFound: 90, Rating: 4.8, JobsDone: 64, OnTime: 98, ResponseH: 2, RehireRate: 86},
		{Slug: "tom-becker", Name: "Tom Becker", Specialty: "Backend Developer", Marketplace: 90, FairFound: 77, Rating: 4.5, JobsDone: 240, OnTime: 84, ResponseH: 8, RehireRate: 68},
		{Slug: "yuki-tanaka", Name: "Yuki Tanaka", Specialty: "Frontend Developer", Marketplace: 78, FairFound: 89, Rating: 4.9, JobsDone: 57, OnTime: 99, ResponseH: 1, RehireRate: 91},
		{Slug: "omar-haddad", Name: "Omar Haddad", Specialty: "Mobile Developer", Marketplace: 76, FairFound: 81, Rating: 4.6, JobsDone: 73, OnTime: 92, ResponseH: 4, RehireRate: 80},
	}
}
