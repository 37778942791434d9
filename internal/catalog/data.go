package catalog

import "course-catalog-go/internal/model"

// spatialMechanics is the canonical curriculum. Slugs are hand-authored; most
// match Slugify(title) but lesson 4 deliberately keeps its shorter historical
// slug, so Validate checks slug form rather than derivation.
var spatialMechanics = model.Course{
	Title: "Spatial Mechanics",
	Description: "A six-lesson course on rigid body kinematics and coordinate " +
		"transformations, taught through real industrial machines from welding " +
		"carriages to parallel robots.",
	TotalLessons: 6,
	Lessons: []model.Lesson{
		{
			ID:         1,
			Title:      "Coordinate Frames and Rigid Body Motion",
			Slug:       "coordinate-frames-and-rigid-body-motion",
			System:     "Orbital Welding Carriage",
			Duration:   model.FormatDuration(45),
			Difficulty: model.Intermediate,
		},
		{
			ID:         2,
			Title:      "Homogeneous Transformation Matrices",
			Slug:       "homogeneous-transformation-matrices",
			System:     "SCARA Assembly Robot",
			Duration:   model.FormatDuration(50),
			Difficulty: model.Intermediate,
		},
		{
			ID:         3,
			Title:      "3D Rotation Matrices and Spatial Transformations",
			Slug:       "3d-rotation-matrices-and-spatial-transformations",
			System:     "Six-Axis Industrial Arm",
			Duration:   model.FormatDuration(60),
			Difficulty: model.Advanced,
		},
		{
			ID:         4,
			Title:      "Matrix Methods for Link Modeling",
			Slug:       "matrix-methods-link-modeling",
			System:     "Stewart Platform (Hexapod)",
			Duration:   model.FormatDuration(55),
			Difficulty: model.Advanced,
		},
		{
			ID:         5,
			Title:      "Forward and Inverse Kinematics",
			Slug:       "forward-and-inverse-kinematics",
			System:     "Delta Parallel Robot",
			Duration:   model.FormatDuration(75),
			Difficulty: model.Advanced,
		},
		{
			ID:         6,
			Title:      "Tool Frames and Orbital Path Planning",
			Slug:       "tool-frames-and-orbital-path-planning",
			System:     "Orbital Welding Tool Head",
			Duration:   model.FormatDuration(90),
			Difficulty: model.Expert,
		},
	},
	Prerequisites: []string{
		"Linear algebra: matrix multiplication, inverses and determinants",
		"Introductory statics and dynamics",
		"Vector geometry and trigonometry",
	},
	LearningOutcomes: []string{
		"Attach coordinate frames to rigid bodies and express poses between them",
		"Compose and invert homogeneous transformation matrices",
		"Construct and verify 3D rotation matrices for spatial mechanisms",
		"Model serial and parallel linkages with matrix methods",
		"Solve forward and inverse kinematics for industrial manipulators",
		"Generate tool frame trajectories along curved workpieces",
	},
}
