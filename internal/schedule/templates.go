package schedule

import "github.com/hbfa/milestones/internal/domain"

// BuildingSteps is the default building milestone template.
var BuildingSteps = []domain.Step{
	{Key: "construction_release", Code: "B1", Label: "B1 Construction Release (Cut 1)", Manual: true, Stage: true},
	{Key: domain.FoundationStartKey, Code: "B2", Label: "B2 Foundation Start", Manual: true, Stage: true},
	{Key: "ground_plumbing_inspection", Code: "B3", Label: "B3 Ground Plumbing Inspection", Offset: 10},
	{Key: "foundation_pour", Code: "B4", Label: "B4 Foundation Pour (Cut 2)", Offset: 5},
	{Key: "first_floor_frame_complete", Code: "B5", Label: "B5 First Floor Frame Complete", Offset: 20},
	{Key: "second_floor_frame_complete", Code: "B6", Label: "B6 Second Floor Frame Complete", Offset: 15},
	{Key: "third_floor_frame_complete", Code: "B7", Label: "B7 Third Floor Frame Complete", Offset: 15, Conditional: domain.FlagThird},
	{Key: "fourth_floor_frame_complete", Code: "B8", Label: "B8 Fourth Floor Frame Complete", Offset: 15, Conditional: domain.FlagFourth},
	{Key: "roof_truss_delivery", Code: "B9", Label: "B9 Roof Truss Delivery", Offset: 10},
	{Key: "roof_nail_shear_nail_inspection", Code: "B10", Label: "B10 Roof Nail Shear Nail Inspection", Offset: 7},
	{Key: "install_windows_exterior_doors", Code: "B11", Label: "B11 Install Windows Exterior Doors", Offset: 14},
}

// UnitSteps is the default unit milestone template.
var UnitSteps = []domain.Step{
	{Key: "unit_frame_inspection", Code: "U1", Label: "U1 Unit Frame Inspection", Manual: true},
	{Key: "drywall_nail_inspection", Code: "U2", Label: "U2 Drywall Nail Inspection", Offset: 14},
	{Key: "drywall_texture", Code: "U3", Label: "U3 Drywall Texture", Offset: 16},
	{Key: "install_cabinets", Code: "U4", Label: "U4 Install Cabinets", Offset: 12},
	{Key: "appliance_delivery", Code: "U5", Label: "U5 Appliance Delivery", Offset: 12},
	{Key: "buyer_orientation", Code: "U6", Label: "U6 Buyer Orientation", Offset: 243},
}
