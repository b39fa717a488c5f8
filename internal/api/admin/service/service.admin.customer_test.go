package adminsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "vela_commerce/internal/api/auth/models"
)

func TestCustomerMatchMacDinhLocUser(t *testing.T) {
	match := customerMatch(&CustomerListQuery{})
	if match["role"] != authmodels.RoleUser {
		t.Errorf("role mặc định = %v, muốn %s", match["role"], authmodels.RoleUser)
	}
	if _, ok := match["status"]; ok {
		t.Error("không truyền status thì filter không được chứa status")
	}
	if _, ok := match["$or"]; ok {
		t.Error("không truyền search thì filter không được chứa $or")
	}
}

func TestCustomerMatchRoleVaStatus(t *testing.T) {
	match := customerMatch(&CustomerListQuery{Role: authmodels.RoleAdmin, Status: authmodels.StatusBanned})
	if match["role"] != authmodels.RoleAdmin {
		t.Errorf("role = %v, muốn %s", match["role"], authmodels.RoleAdmin)
	}
	if match["status"] != authmodels.StatusBanned {
		t.Errorf("status = %v, muốn %s", match["status"], authmodels.StatusBanned)
	}
}

func TestCustomerMatchSearchEscape(t *testing.T) {
	match := customerMatch(&CustomerListQuery{Search: "a.b"})
	or, ok := match["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("$or = %v, muốn 2 nhánh email/name", match["$or"])
	}
	email, ok := or[0]["email"].(bson.M)
	if !ok {
		t.Fatalf("nhánh đầu phải lọc email, nhận %v", or[0])
	}
	if email["$regex"] != `a\.b` {
		t.Errorf("pattern = %v, dấu chấm phải được escape", email["$regex"])
	}
	if email["$options"] != "i" {
		t.Errorf("options = %v, muốn không phân biệt hoa thường", email["$options"])
	}
	if _, ok := or[1]["name"]; !ok {
		t.Errorf("nhánh hai phải lọc name, nhận %v", or[1])
	}
}
