package taxonomy

// Default builds the hand-authored topic taxonomy and freezes it: four
// top-level categories with deeper children carrying domain keyword sets.
func Default() *Tree {
	root := &Node{ID: "root", Name: "Root"}

	// Clinical Domains
	clinical := root.addChild("clinical", "Clinical Domains")

	neuro := clinical.addChild("neuro", "Neurological Conditions")

	asd := neuro.addChild("asd", "Autism Spectrum Disorders",
		"autism", "asd", "autistic", "spectrum disorder")
	asd.Aliases = []string{"autism spectrum", "autistic disorder"}
	asd.addChild("asd-pathophysiology", "Pathophysiology")
	asd.addChild("asd-biomarkers", "Biomarkers")
	asd.addChild("asd-interventions", "Interventions")

	cfs := neuro.addChild("cfs", "Chronic Fatigue Syndrome",
		"chronic fatigue", "cfs", "me/cfs", "myalgic encephalomyelitis")
	cfs.Aliases = []string{"ME", "CFS/ME"}

	metabolic := clinical.addChild("metabolic", "Metabolic Disorders")
	metabolic.addChild("mitochondrial", "Mitochondrial Dysfunction",
		"mitochondria", "mitochondrial", "ATP", "cellular respiration")
	metabolic.addChild("energy-metabolism", "Energy Metabolism",
		"metabolism", "metabolic", "energy production", "krebs cycle")
	metabolic.addChild("oxidative-stress", "Oxidative Stress",
		"oxidative", "ROS", "reactive oxygen", "antioxidant")

	// Research Methodologies
	research := root.addChild("research", "Research Methodologies")
	lab := research.addChild("lab-techniques", "Laboratory Techniques")
	lab.addChild("metabolomics", "Metabolomics")
	lab.addChild("proteomics", "Proteomics")
	lab.addChild("genomics", "Genomics")

	// Theoretical Frameworks
	theory := root.addChild("theory", "Theoretical Frameworks")
	theory.addChild("cdr", "Cell Danger Response",
		"cell danger", "CDR", "danger response", "naviaux")

	// Clinical Applications
	applications := root.addChild("applications", "Clinical Applications")
	applications.addChild("diagnostics", "Diagnostic Protocols")
	applications.addChild("treatment", "Treatment Planning")

	t := &Tree{root: root}
	t.freeze()
	return t
}
