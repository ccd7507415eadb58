package render

// Styles is the print stylesheet embedded in every generated document:
// letter page size, serif body font, page breaks between email blocks.
const Styles = `<style>
@page {
    size: letter;
    margin: 1in 0.75in;
}

body {
    font-family: "Times New Roman", serif;
    font-size: 10pt;
    line-height: 1.5;
    color: #333;
}

.email-message {
    page-break-before: always;
}

.email-message:first-child {
    page-break-before: avoid;
}

.email-header {
    background-color: #f5f5f5;
    border: 1px solid #ddd;
    border-radius: 3px;
    padding: 12px 15px;
    margin-bottom: 20px;
    font-family: monospace;
    font-size: 10pt;
}

.header-field {
    margin-bottom: 3px;
}

.header-label {
    font-weight: bold;
    color: #555;
    display: block;
    margin-bottom: 2px;
}

.header-value {
    color: #222;
    display: block;
    word-wrap: break-word;
    overflow-wrap: break-word;
}

.email-body {
    margin-bottom: 20px;
}

.plaintext-body {
    font-family: "Times New Roman", serif;
    font-size: 10pt;
    line-height: 1.6;
}

.plaintext-body p {
    margin: 0.5em 0;
}

.html-body {
    padding: 10px;
}

.attachments-section {
    margin-top: 20px;
    border-top: 1px solid #ddd;
    padding-top: 15px;
}

.attachments-header {
    font-size: 12pt;
    margin-bottom: 10px;
}

.attachment-item {
    margin-bottom: 15px;
    border: 1px solid #eee;
    padding: 10px;
}

.attachment-name {
    font-family: monospace;
    color: #222;
    font-weight: 500;
    margin-bottom: 8px;
}

.attachment-text {
    font-family: "Times New Roman", serif;
    font-size: 9pt;
    line-height: 1.5;
}

.attachment-text p {
    margin: 0.4em 0;
}

.attachment-html {
    font-family: "Times New Roman", serif;
    font-size: 9pt;
    line-height: 1.5;
    border: 1px solid #eee;
    padding: 8px;
    background-color: #fafafa;
}

.attachment-docx {
    font-family: "Times New Roman", serif;
    font-size: 9pt;
    line-height: 1.5;
}

.attachment-docx p {
    margin: 0.4em 0;
}

.attachment-xlsx {
    font-size: 8pt;
}

.attachment-xlsx h4 {
    margin: 1em 0 0.5em 0;
    font-size: 10pt;
    font-weight: bold;
}

.attachment-xlsx table {
    width: 100%;
    border-collapse: collapse;
    margin-bottom: 1em;
    font-size: 8pt;
}

.attachment-xlsx td {
    border: 1px solid #ddd;
    padding: 3px 6px;
    text-align: left;
}

.attachment-csv {
    width: 100%;
    border-collapse: collapse;
    font-size: 9pt;
}

.attachment-csv th,
.attachment-csv td {
    border: 1px solid #ddd;
    padding: 4px 8px;
    text-align: left;
}

.attachment-csv th {
    background-color: #f5f5f5;
    font-weight: bold;
}

.attachment-image {
    max-width: 95%;
    height: auto;
}

.attachment-reference {
    background-color: #fff3cd;
    border: 1px solid #ffc107;
    padding: 10px;
    border-radius: 3px;
}
</style>`
