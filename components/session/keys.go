package session

// Session keys written at login.
const (
	KeyToken          = "TOKEN"
	KeyCompanyID      = "COMPANYID"
	KeyHRMSOrgID      = "HRMSORGID"
	KeyBoardID        = "board_id"
	KeyMenuState      = "menuState"
	KeyName           = "Name"
	KeyLastName       = "LASTNAME"
	KeyUserType       = "USERTYPE"
	KeyUser           = "user"
	KeyUnitID         = "UNITID"
	KeyBuilding       = "Building"
	KeyCategories     = "categories"
	KeySiteID         = "SITEID"
	KeyStatus         = "STATUS"
	KeyComplaint      = "complaint"
	KeyUserID         = "UserId"
	KeyVibeToken      = "VIBETOKEN"
	KeyVibeUserID     = "VIBEUSERID"
	KeyVibeOrgID      = "VIBEORGID"
	KeyFeatures       = "FEATURES"
	KeyHRMSEmployeeID = "HRMS_EMPLOYEE_ID"
)

// LoginRoute is where Logout sends the user.
const LoginRoute = "/login"

// LogoutKeys lists every key removed on logout, in removal order.
var LogoutKeys = []string{
	KeyToken, KeyCompanyID, KeyHRMSOrgID, KeyBoardID, KeyMenuState, KeyName,
	KeyLastName, KeyUserType, KeyUser, KeyUnitID, KeyBuilding, KeyCategories,
	KeySiteID, KeyStatus, KeyComplaint, KeyUserID, KeyVibeToken, KeyVibeUserID,
	KeyVibeOrgID, KeyFeatures, KeyHRMSEmployeeID,
}
