package markus

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Contents is the payload of a feedback file: TextContents or
// BinaryContents.
type Contents interface {
	body(filename, mimeType string) Body
}

// TextContents is sent as url-encoded form fields.
type TextContents string

func (t TextContents) body(filename, mimeType string) Body {
	params := url.Values{}
	params.Set("filename", filename)
	params.Set("file_content", string(t))
	params.Set("mime_type", mimeType)
	return FormBody(params)
}

// BinaryContents is sent as multipart/form-data with the content as a file
// part.
type BinaryContents []byte

func (b BinaryContents) body(filename, mimeType string) Body {
	return MultipartBody{
		Fields: map[string]string{
			"filename":  filename,
			"mime_type": mimeType,
		},
		Files: []FilePart{{
			FieldName: "file_content",
			FileName:  filename,
			MimeType:  mimeType,
			Content:   b,
		}},
	}
}

// FeedbackFileUpload describes a feedback file to upload.
type FeedbackFileUpload struct {
	// Title is the displayed file name. Its extension determines the mime
	// type when MimeType is empty.
	Title    string
	Contents Contents
	MimeType string

	// Overwrite replaces an existing feedback file with the same Title
	// instead of creating a second one.
	Overwrite bool
}

// GetFeedbackFiles lists the feedback files of a group.
func (c *Client) GetFeedbackFiles(ctx context.Context, assignmentID, groupID int) ([]FeedbackFile, error) {
	path := jsonPath(groupPath(assignmentID, groupID, Collection("feedback_files")))

	var files []FeedbackFile
	if err := c.getJSON(ctx, path, &files); err != nil {
		return nil, fmt.Errorf("failed to get feedback files: %w", err)
	}
	return files, nil
}

// GetFeedbackFile returns the content of a text feedback file. Binary files
// fail with ErrDecode.
func (c *Client) GetFeedbackFile(ctx context.Context, assignmentID, groupID, feedbackFileID int) (string, error) {
	path := jsonPath(groupPath(assignmentID, groupID, Item("feedback_files", feedbackFileID)))

	text, err := c.getText(ctx, path)
	if err != nil {
		return "", fmt.Errorf("failed to get feedback file: %w", err)
	}
	return text, nil
}

// UploadFeedbackFile creates a feedback file, or replaces the one with the
// same title when upload.Overwrite is set.
//
// Overwrite is look-then-act: the existing files are listed first and the
// create or replace is issued afterwards. Concurrent uploads of the same
// title to the same group can therefore create duplicates or lose an
// update. Callers that upload concurrently must serialize per group.
func (c *Client) UploadFeedbackFile(ctx context.Context, assignmentID, groupID int, upload FeedbackFileUpload) (*Response, error) {
	if upload.Contents == nil {
		return nil, &Error{Op: "upload", Err: ErrInvalidParameterShape, Msg: "feedback file contents are required"}
	}

	mimeType, err := ResolveMimeType(upload.Title, upload.MimeType)
	if err != nil {
		return nil, err
	}

	method := http.MethodPost
	path := groupPath(assignmentID, groupID, Collection("feedback_files"))

	if upload.Overwrite {
		existing, err := c.GetFeedbackFiles(ctx, assignmentID, groupID)
		if err != nil {
			return nil, err
		}
		for _, f := range existing {
			if f.Filename == upload.Title {
				method = http.MethodPut
				path = groupPath(assignmentID, groupID, Item("feedback_files", f.ID))
				break
			}
		}
	}

	c.logger.Debug("uploading feedback file",
		"title", upload.Title,
		"mime_type", mimeType,
		"replace", method == http.MethodPut,
	)

	return c.Do(ctx, method, path, upload.Contents.body(upload.Title, mimeType))
}
