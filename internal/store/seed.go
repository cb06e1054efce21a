// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-activity-signup/models"

// DefaultCatalog returns the activities the server starts with. The SQL
// backends get the same rows from the seed migration.
func DefaultCatalog() models.Catalog {
	c := models.NewCatalog()
	c.Add("Chess Club", models.Activity{
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	})
	c.Add("Programming Class", models.Activity{
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	})
	c.Add("Gym Class", models.Activity{
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	})
	c.Add("Basketball Team", models.Activity{
		Description:     "Join the school basketball team and compete in local leagues",
		Schedule:        "Wednesdays, 4:00 PM - 6:00 PM",
		MaxParticipants: 15,
		Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
	})
	c.Add("Swimming Club", models.Activity{
		Description:     "Practice swimming techniques and participate in meets",
		Schedule:        "Mondays, 5:00 PM - 6:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"ava@mergington.edu"},
	})
	c.Add("Drama Club", models.Activity{
		Description:     "Act, direct, and produce plays and performances",
		Schedule:        "Thursdays, 3:30 PM - 5:30 PM",
		MaxParticipants: 25,
		Participants:    []string{"mia@mergington.edu"},
	})
	c.Add("Art Workshop", models.Activity{
		Description:     "Explore painting, drawing, and sculpture techniques",
		Schedule:        "Tuesdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 18,
		Participants:    []string{"lucas@mergington.edu"},
	})
	c.Add("Math Olympiad", models.Activity{
		Description:     "Prepare for math competitions and solve challenging problems",
		Schedule:        "Fridays, 4:00 PM - 5:30 PM",
		MaxParticipants: 10,
		Participants:    []string{"elijah@mergington.edu"},
	})
	c.Add("Debate Team", models.Activity{
		Description:     "Develop public speaking and argumentation skills",
		Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 16,
		Participants:    []string{"charlotte@mergington.edu"},
	})
	return c
}
