package markus

import (
	"context"
	"fmt"
)

// GetAssignments returns all assignments.
func (c *Client) GetAssignments(ctx context.Context) ([]Assignment, error) {
	var assignments []Assignment
	if err := c.getJSON(ctx, jsonPath(BuildPath(Collection("assignments"))), &assignments); err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}
	return assignments, nil
}

// GetGroups returns all groups of an assignment.
func (c *Client) GetGroups(ctx context.Context, assignmentID int) ([]Group, error) {
	path := jsonPath(BuildPath(Item("assignments", assignmentID)))

	var groups []Group
	if err := c.getJSON(ctx, path, &groups); err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}
	return groups, nil
}

// GetGroupsByName maps group names to group ids for an assignment.
func (c *Client) GetGroupsByName(ctx context.Context, assignmentID int) (map[string]int, error) {
	path := jsonPath(BuildPath(Item("assignments", assignmentID), Collection("group_ids_by_name")))

	var ids map[string]int
	if err := c.getJSON(ctx, path, &ids); err != nil {
		return nil, fmt.Errorf("failed to get group ids by name: %w", err)
	}
	return ids, nil
}

// GetGroup returns one group of an assignment.
func (c *Client) GetGroup(ctx context.Context, assignmentID, groupID int) (*Group, error) {
	path := jsonPath(BuildPath(Item("assignments", assignmentID), Item("groups", groupID)))

	var group Group
	if err := c.getJSON(ctx, path, &group); err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return &group, nil
}

// GetGroupByName resolves a group name to its id and returns the group.
func (c *Client) GetGroupByName(ctx context.Context, assignmentID int, name string) (*Group, error) {
	ids, err := c.GetGroupsByName(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	id, ok := ids[name]
	if !ok {
		return nil, &Error{Op: "lookup", Err: ErrGroupNotFound, Msg: name}
	}
	return c.GetGroup(ctx, assignmentID, id)
}

// GetMarksSpreadsheet returns a grade entry form as text.
func (c *Client) GetMarksSpreadsheet(ctx context.Context, spreadsheetID int) (string, error) {
	path := jsonPath(BuildPath(Item("grade_entry_forms", spreadsheetID)))

	text, err := c.getText(ctx, path)
	if err != nil {
		return "", fmt.Errorf("failed to get marks spreadsheet: %w", err)
	}
	return text, nil
}
