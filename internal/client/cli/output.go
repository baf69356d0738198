package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/hexplay/internal/client/client"
	"github.com/dmitrijs2005/hexplay/internal/client/config"
	"github.com/dmitrijs2005/hexplay/internal/common"
	pb "github.com/dmitrijs2005/hexplay/internal/proto"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// userJSON renders users with the canonical proto3 JSON mapping and the
// field names of the .proto file.
var userJSON = protojson.MarshalOptions{UseProtoNames: true}

func (a *App) jsonOutput() bool {
	return a.config != nil && a.config.OutputFormat == config.OutputJSON
}

func (a *App) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) printAnswer(answer string) error {
	if a.jsonOutput() {
		return a.writeJSON(map[string]string{"answer": answer})
	}
	_, err := fmt.Fprintln(a.out, answer)
	return err
}

func (a *App) printUser(u *pb.User) error {
	if a.jsonOutput() {
		raw, err := userJSON.Marshal(u)
		if err != nil {
			return err
		}
		return a.writeJSON(json.RawMessage(raw))
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "id:\t%d\n", u.Id)
	fmt.Fprintf(w, "token:\t%s\n", u.Token)
	fmt.Fprintf(w, "name:\t%s\n", u.Name)
	fmt.Fprintf(w, "email:\t%s\n", u.Email)
	fmt.Fprintf(w, "age:\t%s\n", formatAge(u.Age))
	fmt.Fprintf(w, "version:\t%d\n", u.Version)
	fmt.Fprintf(w, "created_at:\t%s\n", formatTime(u.CreatedAt))
	fmt.Fprintf(w, "updated_at:\t%s\n", formatTime(u.UpdatedAt))
	return w.Flush()
}

func (a *App) printUsers(users []*pb.User) error {
	if a.jsonOutput() {
		list := make([]json.RawMessage, 0, len(users))
		for _, u := range users {
			raw, err := userJSON.Marshal(u)
			if err != nil {
				return err
			}
			list = append(list, raw)
		}
		return a.writeJSON(list)
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tAGE\tVERSION\tTOKEN")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n", u.Id, u.Name, u.Email, formatAge(u.Age), u.Version, u.Token)
	}
	return w.Flush()
}

func formatTime(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return "-"
	}
	return ts.AsTime().Format(time.RFC3339)
}

func formatAge(age *int32) string {
	if age == nil {
		return "-"
	}
	return strconv.Itoa(int(*age))
}

// describe turns a command error into a message for the terminal.
func (a *App) describe(err error) string {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return "user not found"
	case errors.Is(err, common.ErrVersionConflict):
		return "version conflict: the user was changed since you read it; fetch it again and retry"
	case errors.Is(err, common.ErrConflict):
		return "conflict: a user with this email already exists"
	case errors.Is(err, client.ErrUnavailable):
		addr := ""
		if a.config != nil {
			addr = a.config.ServerEndpointAddr
		}
		return fmt.Sprintf("server unavailable at %s", addr)
	default:
		return err.Error()
	}
}
