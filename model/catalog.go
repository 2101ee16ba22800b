package model

var catalog = []Movie{
	{
		Title: "Avatar",
		Images: []string{
			"https://images-na.ssl-images-amazon.com/images/M/MV5BMjEyOTYyMzUxNl5BMl5BanBnXkFtZTcwNTg0MTUzNA@@._V1_SX1500_CR0,0,1500,999_AL_.jpg",
			"https://images-na.ssl-images-amazon.com/images/M/MV5BNzM2MDk3MTcyMV5BMl5BanBnXkFtZTcwNjg0MTUzNA@@._V1_SX1777_CR0,0,1777,999_AL_.jpg",
		},
		Director: "James Cameron",
		Year:     2009,
		Genre:    "Action, Adventure, Fantasy",
		Actors:   []string{"Sam Worthington", "Zoe Saldana", "Sigourney Weaver", "Stephen Lang"},
		Rating:   7.9,
		Plot:     "A paraplegic marine dispatched to the moon Pandora on a unique mission becomes torn between following his orders and protecting an alien civilization.",
	},
	{
		Title: "I Am Legend",
		Images: []string{
			"https://images-na.ssl-images-amazon.com/images/M/MV5BMTI0NTI4NjE3NV5BMl5BanBnXkFtZTYwMDA0Nzc4._V1_.jpg",
		},
		Director: "Francis Lawrence",
		Year:     2007,
		Genre:    "Drama, Horror, Sci-Fi",
		Actors:   []string{"Will Smith", "Alice Braga", "Charlie Tahan", "Salli Richardson-Whitfield"},
		Rating:   7.2,
		Plot:     "Years after a plague kills most of humanity and transforms the rest into monsters, the sole survivor in New York City struggles valiantly to find a cure.",
	},
	{
		Title: "300",
		Images: []string{
			"https://images-na.ssl-images-amazon.com/images/M/MV5BMTMwNTg5MzMwMV5BMl5BanBnXkFtZTcwMzA2NTIyMw@@._V1_SX1777_CR0,0,1777,937_AL_.jpg",
		},
		Director: "Zack Snyder",
		Year:     2006,
		Genre:    "Action, Drama, Fantasy",
		Actors:   []string{"Gerard Butler", "Lena Headey", "Dominic West", "David Wenham"},
		Rating:   7.7,
		Plot:     "King Leonidas of Sparta and a force of 300 men fight the Persians at Thermopylae in 480 B.C.",
	},
	{
		Title: "The Avengers",
		Images: []string{
			"https://images-na.ssl-images-amazon.com/images/M/MV5BMTA0NjY0NzE4OTReQTJeQWpwZ15BbWU3MDczODg2Nzc@._V1_SX1777_CR0,0,1777,999_AL_.jpg",
		},
		Director: "Joss Whedon",
		Year:     2012,
		Genre:    "Action, Sci-Fi, Thriller",
		Actors:   []string{"Robert Downey Jr.", "Chris Evans", "Mark Ruffalo", "Chris Hemsworth"},
		Rating:   8.1,
		Plot:     "Earth's mightiest heroes must come together and learn to fight as a team if they are to stop the mischievous Loki and his alien army from enslaving humanity.",
	},
	{
		Title: "The Wolf of Wall Street",
		Images: []string{
			"https://images-na.ssl-images-amazon.com/images/M/MV5BNDIwMDIxNzk3Ml5BMl5BanBnXkFtZTgwMTg0MzQ4MDE@._V1_SX1500_CR0,0,1500,999_AL_.jpg",
		},
		Director: "Martin Scorsese",
		Year:     2013,
		Genre:    "Biography, Comedy, Crime",
		Actors:   []string{"Leonardo DiCaprio", "Jonah Hill", "Margot Robbie", "Matthew McConaughey"},
		Rating:   8.2,
		Plot:     "Based on the true story of Jordan Belfort, from his rise to a wealthy stock-broker living the high life to his fall involving crime, corruption and the federal government.",
	},
	{
		Title: "Interstellar",
		Images: []string{
			"https://images-na.ssl-images-amazon.com/images/M/MV5BMjA3NTEwOTMxMV5BMl5BanBnXkFtZTgwMjMyODgxMzE@._V1_SX1500_CR0,0,1500,999_AL_.jpg",
		},
		Director: "Christopher Nolan",
		Year:     2014,
		Genre:    "Adventure, Drama, Sci-Fi",
		Actors:   []string{"Ellen Burstyn", "Matthew McConaughey", "Mackenzie Foy", "John Lithgow"},
		Rating:   8.6,
		Plot:     "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
	},
	{
		Title: "Inception",
		Images: []string{
			"https://images-na.ssl-images-amazon.com/images/M/MV5BMjAxMzY3NjcxNF5BMl5BanBnXkFtZTcwNTI5OTM0Mw@@._V1_SX1500_CR0,0,1500,999_AL_.jpg",
		},
		Director: "Christopher Nolan",
		Year:     2010,
		Genre:    "Action, Adventure, Sci-Fi",
		Actors:   []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt", "Elliot Page", "Tom Hardy"},
		Rating:   8.8,
		Plot:     "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
	},
	{
		Title: "Gravity",
		Images: []string{
			"https://images-na.ssl-images-amazon.com/images/M/MV5BNjE5MzYwMzYxMF5BMl5BanBnXkFtZTcwOTk4MTk0OQ@@._V1_SX1500_CR0,0,1500,999_AL_.jpg",
		},
		Director: "Alfonso Cuarón",
		Year:     2013,
		Genre:    "Drama, Sci-Fi, Thriller",
		Actors:   []string{"Sandra Bullock", "George Clooney", "Ed Harris", "Orto Ignatiussen"},
		Rating:   7.7,
		Plot:     "Two astronauts work together to survive after an accident which leaves them alone in space.",
	},
	{
		Title: "Dune",
		Images: []string{
			"https://m.media-amazon.com/images/M/MV5BMDQ0NjgyN2YtNWViNS00YjA3LTkxNDktYzFkZTExZGMxZDkxXkEyXkFqcGdeQXVyODE5NzE3OTE@._V1_.jpg",
		},
		Director: "Denis Villeneuve",
		Year:     2021,
		Genre:    "Action, Adventure, Drama",
		Actors:   []string{"Timothée Chalamet", "Rebecca Ferguson", "Zendaya", "Oscar Isaac"},
		Rating:   8.0,
		Plot:     "A noble family becomes embroiled in a war for control over the galaxy's most valuable asset while its heir becomes troubled by visions of a dark future.",
	},
	{
		Title: "Arrival",
		Images: []string{
			"https://m.media-amazon.com/images/M/MV5BMTExMzU0ODcxNDheQTJeQWpwZ15BbWU4MDE1OTI4MzAy._V1_.jpg",
		},
		Director: "Denis Villeneuve",
		Year:     2016,
		Genre:    "Drama, Mystery, Sci-Fi",
		Actors:   []string{"Amy Adams", "Jeremy Renner", "Forest Whitaker", "Michael Stuhlbarg"},
		Rating:   7.9,
		Plot:     "A linguist works with the military to communicate with alien lifeforms after twelve mysterious spacecraft appear around the world.",
	},
}
