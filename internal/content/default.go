package content

var (
	summary = `I build scalable web applications with modern technologies and create seamless user experiences.`

	amazonStack = `AWS Lambda • DynamoDB • CloudWatch • TypeScript • CloudFront • IAM • CodeCommit • CodeBuild • CodeDeploy • CodePipeline`

	dsaDescription = "Data Structures and Algorithms certification with consistent\n80%+ performance."
)

// Default returns the built-in portfolio.
func Default() *Portfolio {
	p := &Portfolio{
		Profile: Profile{
			Name:     "Veerlapati Swapnika",
			Title:    "Full-Stack Developer",
			Summary:  summary,
			Headline: "SDE Intern @ Amazon | Full-Stack Developer | Serverless + MERN",
		},
		Contact: ContactInfo{
			Name:     "Veerlapati Swapnika",
			Email:    "veerlapatiswapnika26@gmail.com",
			Phone:    "+91 6304898539",
			LinkedIn: "https://www.linkedin.com/in/veerlapati-swapnika/",
			GitHub:   "https://github.com/Swapnika2608",
			Resume:   "https://drive.google.com/file/d/1CYpdcQo4-U1nCyezYri7hEMsYDWIZDiO/view?usp=drivesdk",
		},
		Footer: Footer{
			Heading: "Let's build something great together",
			Blurb:   "Looking for SDE Intern / Full-time roles - let's connect.",
		},
		Experience: []ExperienceEntry{
			{
				Company:   "Amazon",
				Role:      "Software Development Engineer Intern",
				Period:    "Jun 2025 - Aug 2025",
				Location:  "Bangalore",
				TechStack: amazonStack,
				Points: []string{
					"Built a serverless xApp OTA Rollout Tracking System for real-time app version monitoring across Amazon ABI devices.",
					"Solved lack of visibility by enabling live rollout % tracking instead of manual partner reports.",
					"Reduced daily manual effort by 4–5 hours and enabled real-time OTA deployment visibility.",
					"Created internal unique-device counting (no external device registry dependency) for ~99.9% accurate metrics",
					"Developed on AWS Lambda + DynamoDB with CloudWatch monitoring + alerts for reliability and auditability",
				},
			},
		},
		Projects: []Project{
			{
				Title:       "Library Management System",
				Stack:       "MERN, TypeScript, Redux Toolkit",
				Description: "Full-featured library app with role-based auth, 24 REST APIs, admin dashboard, loan workflow and search filters.",
				Repo:        "https://github.com/Swapnika2608/Library-Management-System",
				Live:        "https://library-management-system-azure-three.vercel.app/",
			},
			{
				Title:       "Wikipedia Search Application",
				Stack:       "HTML, CSS, JavaScript, Bootstrap, REST API",
				Description: "Custom search UI that fetches results from Wikipedia API and supports details view.",
				Repo:        "#",
				Live:        "#",
			},
		},
		Certificates: []Certificate{
			{
				Title:       "Amazon Internship Completion Certificate",
				Issuer:      "Amazon",
				Date:        "Aug 2025",
				Description: "Certified for successful completion of SDE Internship.",
				Link:        "https://drive.google.com/uc?export=download&id=1vkls33KJSIE3YB1ksEDIxKau7L_C4iuJ",
				Note:        "Digitally signed & verifiable certificate",
			},
			{
				Title:       "DSA Certification",
				Issuer:      "Amazon Future Engineer Scholar Program + FFE",
				Date:        "Feb 2025",
				Description: dsaDescription,
				Link:        "https://drive.google.com/uc?export=download&id=17VUGenGtuJz1cJMTiNdcG1Gws0pl7a7S",
			},
		},
		SkillGroups: []SkillGroup{
			{Category: "Backend / Programming Languages", Skills: []string{"Java", "Python", "JavaScript", "TypeScript"}},
			{Category: "Frontend", Skills: []string{"ReactJS", "HTML", "CSS"}},
			{Category: "Database", Skills: []string{"MongoDB"}},
			{Category: "Tools", Skills: []string{"Git", "Redux Toolkit", "Power BI", "Postman"}},
		},
	}
	p.normalize()
	return p
}
