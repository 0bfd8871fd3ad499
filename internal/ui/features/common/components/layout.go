package components

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

// ContentID is the element every view patches its body into.
const ContentID = "ui-content"
