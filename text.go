package main

var (
	HeroTitle = `Building software that's useful, fast and a little bit fun.`

	HeroTagline = `Go developer working on web services, terminal tools and the occasional
	simulation. Scroll down to follow the journey.`

	AboutMe = `I love building software that's both useful and fun, and I'm always curious about how things work behind the scenes.
	Most of my projects start with a simple idea and turn into a chance to learn something new, whether it's exploring a
	different language, experimenting with tools, or solving tricky problems.
	The background of this page is one of them: a rotating field of particles, written in Go.`

	ContactBlurb = `Have a project in mind or just want to say hello? I'm always interested in hearing about new
	projects and opportunities. Whether you have a question or just want to say hi, feel free to reach out!`
)
