package risk

// Conversion factor between molar and mass concentration for total, HDL
// and LDL cholesterol: mg/dL = mmol/L x 38.67.
const MgdlPerMmol = 38.67

// Triglycerides convert with their own molar mass.
const MgdlPerMmolTG = 88.57

func MmolToMgdl(v float64) float64 { return v * MgdlPerMmol }

func MgdlToMmol(v float64) float64 { return v / MgdlPerMmol }

func MmolToMgdlTG(v float64) float64 { return v * MgdlPerMmolTG }

func MgdlToMmolTG(v float64) float64 { return v / MgdlPerMmolTG }
